package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/delivery/http/response"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HeaderAccessToken carries the token issued on registration.
const HeaderAccessToken = "X-Access-Token"

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

// Register creates a user. A duplicate email answers 400 USER_ALREADY_EXISTS.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.CreateUserInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("User registered",
		slog.Uint64("user_id", uint64(output.User.ID)),
	)
	c.Response().Header().Set(HeaderAccessToken, output.AccessToken)

	return response.Success(c, http.StatusOK, output.User, "User registered successfully")
}

// Me is reserved for session-based identity and always answers 501.
func (h *AuthHandler) Me(c echo.Context) error {
	return response.Error(c,
		domainerrors.ErrNotImplemented.HTTPCode(),
		domainerrors.ErrNotImplemented.ErrorCode(),
		domainerrors.ErrNotImplemented.Message(),
		"",
	)
}
