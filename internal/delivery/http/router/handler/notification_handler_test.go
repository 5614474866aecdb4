package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"campwatch/internal/delivery/http/router/handler"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/service"
	"campwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) entity.Date {
	t.Helper()

	d, err := entity.ParseDate(s)
	require.NoError(t, err)

	return d
}

func samplePreference(t *testing.T) *entity.NotificationPreference {
	name := "Upper Pines"

	return &entity.NotificationPreference{
		ID:             5,
		UserID:         testDefaultUserID,
		CampgroundID:   int64Ptr(232447),
		CampgroundName: &name,
		StartDate:      date(t, "2025-07-01"),
		EndDate:        date(t, "2025-07-04"),
		PhoneNumber:    "+15555550100",
		IsActive:       true,
	}
}

const createBody = `{"campground_id":232447,"campground_name":"Upper Pines",` +
	`"start_date":"2025-07-01","end_date":"2025-07-04","phone_number":"+15555550100"}`

func TestNotificationHandler_Create(t *testing.T) {
	t.Run("creates for the default user", func(t *testing.T) {
		ts := newTestServer(t)
		pref := samplePreference(t)
		ts.notificationUC.EXPECT().
			CreateNotificationPreference(mock.Anything, testDefaultUserID, mock.MatchedBy(func(in *usecase.CreatePreferenceInput) bool {
				return *in.CampgroundID == 232447 && in.StartDate.Equal(pref.StartDate) && in.EndDate.Equal(pref.EndDate)
			})).
			Return(pref, nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/", createBody)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[entity.NotificationPreference](t, rec)
		assert.Equal(t, uint(5), got.ID)
		assert.Equal(t, "2025-07-01", got.StartDate.String())
	})

	t.Run("route without trailing slash", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().CreateNotificationPreference(mock.Anything, testDefaultUserID, mock.Anything).
			Return(samplePreference(t), nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications", createBody)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("bearer token selects the user", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 42}, nil).Once()
		ts.notificationUC.EXPECT().CreateNotificationPreference(mock.Anything, uint(42), mock.Anything).
			Return(samplePreference(t), nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications", createBody, echo.HeaderAuthorization, "Bearer good")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("inverted dates answer 400", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().CreateNotificationPreference(mock.Anything, testDefaultUserID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidDateRange).Once()

		rec := ts.do(http.MethodPost, "/api/notifications", `{"campground_id":1,"start_date":"2025-07-04",`+
			`"end_date":"2025-07-01","phone_number":"+15555550100"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})

	t.Run("unknown user answers 400", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().CreateNotificationPreference(mock.Anything, testDefaultUserID, mock.Anything).
			Return(nil, domainerrors.ErrUserNotFound).Once()

		rec := ts.do(http.MethodPost, "/api/notifications", createBody)

		requireErrorCode(t, rec, http.StatusBadRequest, "USER_NOT_FOUND")
	})

	t.Run("missing phone fails validation", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/notifications", `{"campground_id":1,"start_date":"2025-07-01","end_date":"2025-07-04"}`)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "PhoneNumber")
	})

	t.Run("malformed date", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/notifications", `{"start_date":"July 1st","end_date":"2025-07-04","phone_number":"1"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("bad token is unauthorized", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

		rec := ts.do(http.MethodPost, "/api/notifications", createBody, echo.HeaderAuthorization, "Bearer expired")

		env := requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
		assert.Contains(t, env.Error.Details, "expired")
	})
}

func TestNotificationHandler_List(t *testing.T) {
	t.Run("defaults to the acting user and active only", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationPreferences(mock.Anything, testDefaultUserID, true).
			Return([]*entity.NotificationPreference{samplePreference(t)}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]entity.NotificationPreference](t, rec), 1)
	})

	t.Run("explicit filters", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationPreferences(mock.Anything, uint(9), false).
			Return([]*entity.NotificationPreference{}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/?user_id=9&active_only=false", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[[]entity.NotificationPreference](t, rec))
	})

	t.Run("bad active_only", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/notifications?active_only=maybe", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestNotificationHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationPreference(mock.Anything, uint(5)).Return(samplePreference(t), nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint(5), decodeData[entity.NotificationPreference](t, rec).ID)
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationPreference(mock.Anything, uint(99)).
			Return(nil, domainerrors.ErrPreferenceNotFound).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/99", "")

		requireErrorCode(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
	})

	t.Run("non numeric id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/notifications/abc", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestNotificationHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		ts := newTestServer(t)
		updated := samplePreference(t)
		updated.IsActive = false
		ts.notificationUC.EXPECT().
			UpdateNotificationPreference(mock.Anything, uint(5), mock.MatchedBy(func(in *usecase.UpdatePreferenceInput) bool {
				return in.IsActive != nil && !*in.IsActive && in.StartDate == nil && in.PhoneNumber == nil
			})).
			Return(updated, nil).Once()

		rec := ts.do(http.MethodPut, "/api/notifications/5", `{"is_active":false}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.False(t, decodeData[entity.NotificationPreference](t, rec).IsActive)
	})

	t.Run("null clears a target field", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().
			UpdateNotificationPreference(mock.Anything, uint(7), mock.MatchedBy(func(in *usecase.UpdatePreferenceInput) bool {
				return in.CampgroundID.IsNull() &&
					in.RecreationAreaID.Set && *in.RecreationAreaID.Value == 2725 &&
					!in.CampsiteID.Set && !in.CampgroundName.Set
			})).
			Return(samplePreference(t), nil).Once()

		rec := ts.do(http.MethodPut, "/api/notifications/7", `{"campground_id":null,"recreation_area_id":2725}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("null required field is rejected", func(t *testing.T) {
		for _, body := range []string{`{"start_date":null}`, `{"phone_number":null}`, `{"is_active":null}`} {
			ts := newTestServer(t)

			rec := ts.do(http.MethodPut, "/api/notifications/5", body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		}
	})

	t.Run("overlong name fails validation", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPut, "/api/notifications/5", `{"campground_name":"`+strings.Repeat("x", 256)+`"}`)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "CampgroundName")
	})

	t.Run("missing preference answers 404", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().UpdateNotificationPreference(mock.Anything, uint(99), mock.Anything).
			Return(nil, domainerrors.ErrPreferenceNotFound).Once()

		rec := ts.do(http.MethodPut, "/api/notifications/99", `{"is_active":true}`)

		requireErrorCode(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
	})

	t.Run("other client errors answer 400", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().UpdateNotificationPreference(mock.Anything, uint(5), mock.Anything).
			Return(nil, domainerrors.ErrInvalidDateRange).Once()

		rec := ts.do(http.MethodPut, "/api/notifications/5", `{"end_date":"2025-06-01"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	ts := newTestServer(t)
	ts.notificationUC.EXPECT().DeleteNotificationPreference(mock.Anything, uint(5)).Return(nil).Once()

	rec := ts.do(http.MethodDelete, "/api/notifications/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notification deleted successfully", decodeData[map[string]string](t, rec)["message"])
}

func TestNotificationHandler_History(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationHistory(mock.Anything, uint(5), usecase.DefaultHistoryLimit).
			Return([]*entity.NotificationHistory{}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/history", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", string(decode(t, rec).Data))
	})

	t.Run("out of range limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetNotificationHistory(mock.Anything, uint(5), 0).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100")).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/history?limit=0", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestNotificationHandler_Test(t *testing.T) {
	prefID := uint(5)

	t.Run("delivered", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().SendTestNotification(mock.Anything, prefID).Return(&usecase.TestNotificationResult{
			Delivered: true,
			History: &entity.NotificationHistory{
				ID: 11, PreferenceID: &prefID, NotificationType: entity.NotificationTypeSMS,
				Message: "Test notification sent successfully", Success: true, SentAt: time.Now(),
			},
		}, nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/test", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeData[handler.TestNotificationResponse](t, rec)
		assert.Equal(t, "Test notification sent successfully", body.Message)
		require.NotNil(t, body.History)
		assert.True(t, body.History.Success)
	})

	t.Run("delivery failure answers 502", func(t *testing.T) {
		ts := newTestServer(t)
		errMsg := "carrier rejected number"
		ts.notificationUC.EXPECT().SendTestNotification(mock.Anything, prefID).Return(&usecase.TestNotificationResult{
			Delivered: false,
			History:   &entity.NotificationHistory{ID: 12, PreferenceID: &prefID, ErrorMessage: &errMsg},
		}, nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/test", "")

		env := requireErrorCode(t, rec, http.StatusBadGateway, "DELIVERY_FAILED")
		assert.Equal(t, errMsg, env.Error.Details)
	})

	t.Run("missing preference", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().SendTestNotification(mock.Anything, prefID).
			Return(nil, domainerrors.ErrPreferenceNotFound).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/test", "")

		requireErrorCode(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
	})
}

func TestNotificationHandler_Watch(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().StartBackgroundSearch(mock.Anything, uint(5)).
			Return(&usecase.WatchStatus{PreferenceID: 5, Watching: true}, nil).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/watch", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeData[usecase.WatchStatus](t, rec).Watching)
	})

	t.Run("start on inactive preference", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().StartBackgroundSearch(mock.Anything, uint(5)).
			Return(nil, domainerrors.ErrPreferenceInactive).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/watch", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "NOTIFICATION_INACTIVE")
	})

	t.Run("start with watcher disabled", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().StartBackgroundSearch(mock.Anything, uint(5)).
			Return(nil, domainerrors.ErrWatcherDisabled).Once()

		rec := ts.do(http.MethodPost, "/api/notifications/5/watch", "")

		requireErrorCode(t, rec, http.StatusServiceUnavailable, "WATCHER_DISABLED")
	})

	t.Run("stop", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().StopBackgroundSearch(mock.Anything, uint(5)).
			Return(&usecase.WatchStatus{PreferenceID: 5}, nil).Once()

		rec := ts.do(http.MethodDelete, "/api/notifications/5/watch", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeData[usecase.WatchStatus](t, rec).Watching)
	})

	t.Run("status", func(t *testing.T) {
		ts := newTestServer(t)
		checked := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
		ts.notificationUC.EXPECT().GetBackgroundSearchStatus(mock.Anything, uint(5)).
			Return(&usecase.WatchStatus{PreferenceID: 5, Watching: true, LastChecked: &checked, NotifiedMatches: 2}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/watch", "")

		require.Equal(t, http.StatusOK, rec.Code)
		status := decodeData[usecase.WatchStatus](t, rec)
		assert.Equal(t, 2, status.NotifiedMatches)
		require.NotNil(t, status.LastChecked)
		assert.True(t, checked.Equal(*status.LastChecked))
	})
}

func TestNotificationHandler_BookingQRCode(t *testing.T) {
	t.Run("png body", func(t *testing.T) {
		ts := newTestServer(t)
		png := []byte("\x89PNG\r\n\x1a\n")
		ts.notificationUC.EXPECT().GetBookingQRCode(mock.Anything, uint(5)).Return(png, nil).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/qrcode", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("no target", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetBookingQRCode(mock.Anything, uint(5)).
			Return(nil, domainerrors.ErrNoBookingTarget).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/qrcode", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "NO_BOOKING_TARGET")
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notificationUC.EXPECT().GetBookingQRCode(mock.Anything, uint(5)).Return(nil, errStoreDown).Once()

		rec := ts.do(http.MethodGet, "/api/notifications/5/qrcode", "")

		env := requireErrorCode(t, rec, http.StatusInternalServerError, "TRANSACTION_FAILED")
		assert.Empty(t, env.Error.Details)
	})
}
