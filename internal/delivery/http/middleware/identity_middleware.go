package middleware

import (
	"log/slog"
	"strings"

	"campwatch/config"
	deliverycontext "campwatch/internal/delivery/context"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the acting user of a request.
type IdentityMiddleware struct {
	tokenSvc      service.TokenService
	defaultUserID uint
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(tokenSvc service.TokenService, cfg *config.Config) *IdentityMiddleware {
	var defaultUserID uint
	if cfg.Auth != nil {
		defaultUserID = cfg.Auth.DefaultUserID
	}

	return &IdentityMiddleware{
		tokenSvc:      tokenSvc,
		defaultUserID: defaultUserID,
	}
}

// Resolve takes the user from a Bearer access token. Requests without an
// Authorization header act as the configured default user; a bad token is rejected.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			deliverycontext.SetUserID(c, m.defaultUserID)

			return next(c)
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return domainerrors.ErrInvalidToken.WithDetails(err.Error())
		}

		deliverycontext.SetUserID(c, claims.UserID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Any("user_id", claims.UserID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
