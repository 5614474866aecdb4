package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/delivery/http/response"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	testNotificationSent   = "Test notification sent successfully"
	testNotificationFailed = "Test notification failed"
)

// NotificationHandler serves notification preferences, their history and background search.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePreferenceRequest is the body of POST /api/notifications.
type CreatePreferenceRequest struct {
	RecreationAreaID   *int64      `json:"recreation_area_id"`
	RecreationAreaName *string     `json:"recreation_area_name" validate:"omitempty,max=255"`
	CampgroundID       *int64      `json:"campground_id"`
	CampgroundName     *string     `json:"campground_name" validate:"omitempty,max=255"`
	CampsiteID         *int64      `json:"campsite_id"`
	CampsiteName       *string     `json:"campsite_name" validate:"omitempty,max=255"`
	StartDate          entity.Date `json:"start_date" validate:"required"`
	EndDate            entity.Date `json:"end_date" validate:"required"`
	PhoneNumber        string      `json:"phone_number" validate:"required,max=20"`
}

// UpdatePreferenceRequest is the body of PUT /api/notifications/:id. Absent fields are kept,
// a null target field is cleared and a null required field is rejected.
type UpdatePreferenceRequest struct {
	RecreationAreaID   entity.Optional[int64]       `json:"recreation_area_id"`
	RecreationAreaName entity.Optional[string]      `json:"recreation_area_name" validate:"omitempty,max=255"`
	CampgroundID       entity.Optional[int64]       `json:"campground_id"`
	CampgroundName     entity.Optional[string]      `json:"campground_name" validate:"omitempty,max=255"`
	CampsiteID         entity.Optional[int64]       `json:"campsite_id"`
	CampsiteName       entity.Optional[string]      `json:"campsite_name" validate:"omitempty,max=255"`
	StartDate          entity.Optional[entity.Date] `json:"start_date"`
	EndDate            entity.Optional[entity.Date] `json:"end_date"`
	PhoneNumber        entity.Optional[string]      `json:"phone_number" validate:"omitempty,min=1,max=20"`
	IsActive           entity.Optional[bool]        `json:"is_active"`
}

func (r *UpdatePreferenceRequest) nullRequiredField() string {
	switch {
	case r.StartDate.IsNull():
		return "start_date"
	case r.EndDate.IsNull():
		return "end_date"
	case r.PhoneNumber.IsNull():
		return "phone_number"
	case r.IsActive.IsNull():
		return "is_active"
	default:
		return ""
	}
}

// TestNotificationResponse is the data of POST /api/notifications/:id/test.
type TestNotificationResponse struct {
	Message string                      `json:"message"`
	History *entity.NotificationHistory `json:"history"`
}

// Create stores a new preference for the calling user.
// Every client error, the date order included, answers 400.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req CreatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.AsBadRequest(c, err)
	}

	userID, _ := deliverycontext.GetUserID(c)
	pref, err := h.uc.CreateNotificationPreference(c.Request().Context(), userID, &usecase.CreatePreferenceInput{
		RecreationAreaID:   req.RecreationAreaID,
		RecreationAreaName: req.RecreationAreaName,
		CampgroundID:       req.CampgroundID,
		CampgroundName:     req.CampgroundName,
		CampsiteID:         req.CampsiteID,
		CampsiteName:       req.CampsiteName,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		PhoneNumber:        req.PhoneNumber,
	})
	if err != nil {
		return response.AsBadRequest(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "Notification created successfully")
}

// List returns the preferences of user_id, defaulting to the calling user.
func (h *NotificationHandler) List(c echo.Context) error {
	actingUserID, _ := deliverycontext.GetUserID(c)
	userID, err := queryInt(c, "user_id", int(actingUserID))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if userID <= 0 {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("user_id must be a positive integer"))
	}

	activeOnly, err := queryBool(c, "active_only", true)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	prefs, err := h.uc.GetNotificationPreferences(c.Request().Context(), uint(userID), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "")
}

// Get returns one preference.
func (h *NotificationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pref, err := h.uc.GetNotificationPreference(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "")
}

// Update applies a partial update. A missing preference answers 404, any other client error 400.
func (h *NotificationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.AsBadRequest(c, err)
	}
	if field := req.nullRequiredField(); field != "" {
		return response.AsBadRequest(c, domainerrors.ErrValidationFailed.WithDetails(field+" cannot be null"))
	}

	pref, err := h.uc.UpdateNotificationPreference(c.Request().Context(), id, &usecase.UpdatePreferenceInput{
		RecreationAreaID:   req.RecreationAreaID,
		RecreationAreaName: req.RecreationAreaName,
		CampgroundID:       req.CampgroundID,
		CampgroundName:     req.CampgroundName,
		CampsiteID:         req.CampsiteID,
		CampsiteName:       req.CampsiteName,
		StartDate:          req.StartDate.Value,
		EndDate:            req.EndDate.Value,
		PhoneNumber:        req.PhoneNumber.Value,
		IsActive:           req.IsActive.Value,
	})
	if errors.Is(err, domainerrors.ErrPreferenceNotFound) {
		return response.HandleAppError(c, err)
	}
	if err != nil {
		return response.AsBadRequest(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "Notification updated successfully")
}

// Delete removes a preference and stops its background search.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.DeleteNotificationPreference(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted successfully"}, "Notification deleted successfully")
}

// History returns delivery attempts, newest first.
func (h *NotificationHandler) History(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit", usecase.DefaultHistoryLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.uc.GetNotificationHistory(c.Request().Context(), id, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "")
}

// Test sends a test message. A failed delivery answers 502 after its history row is written.
func (h *NotificationHandler) Test(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uc.SendTestNotification(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Delivered {
		details := ""
		if result.History != nil && result.History.ErrorMessage != nil {
			details = *result.History.ErrorMessage
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Test notification not delivered",
			slog.Uint64("preference_id", uint64(id)),
			slog.String("error", details),
		)

		return response.Error(c,
			domainerrors.ErrDeliveryFailed.HTTPCode(),
			domainerrors.ErrDeliveryFailed.ErrorCode(),
			testNotificationFailed,
			details,
		)
	}

	return response.Success(c, http.StatusOK, TestNotificationResponse{
		Message: testNotificationSent,
		History: result.History,
	}, testNotificationSent)
}

// StartWatch begins the background search for a preference.
func (h *NotificationHandler) StartWatch(c echo.Context) error {
	return h.watch(c, h.uc.StartBackgroundSearch, "Background search started")
}

// StopWatch ends the background search. Stopping an idle preference succeeds.
func (h *NotificationHandler) StopWatch(c echo.Context) error {
	return h.watch(c, h.uc.StopBackgroundSearch, "Background search stopped")
}

// WatchStatus reports the background search state of a preference.
func (h *NotificationHandler) WatchStatus(c echo.Context) error {
	return h.watch(c, h.uc.GetBackgroundSearchStatus, "")
}

// BookingQRCode renders the booking link of the preference's target as a PNG.
func (h *NotificationHandler) BookingQRCode(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.uc.GetBookingQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *NotificationHandler) watch(
	c echo.Context,
	op func(ctx context.Context, id uint) (*usecase.WatchStatus, error),
	message string,
) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := op(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, message)
}
