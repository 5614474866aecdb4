package usecase

import (
	"context"
	"time"

	"campwatch/internal/domain/entity"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)

// CreatePreferenceInput defines the data required to create a notification preference.
type CreatePreferenceInput struct {
	RecreationAreaID   *int64
	RecreationAreaName *string
	CampgroundID       *int64
	CampgroundName     *string
	CampsiteID         *int64
	CampsiteName       *string
	StartDate          entity.Date
	EndDate            entity.Date
	PhoneNumber        string
}

// UpdatePreferenceInput carries a partial update. Unset fields keep their stored value;
// the nullable target fields are cleared by an explicit null. Nil required fields are kept.
type UpdatePreferenceInput struct {
	RecreationAreaID   entity.Optional[int64]
	RecreationAreaName entity.Optional[string]
	CampgroundID       entity.Optional[int64]
	CampgroundName     entity.Optional[string]
	CampsiteID         entity.Optional[int64]
	CampsiteName       entity.Optional[string]
	StartDate          *entity.Date
	EndDate            *entity.Date
	PhoneNumber        *string
	IsActive           *bool
}

// TestNotificationResult reports a test send. A failed delivery is not an error:
// Delivered is false and History records the failure.
type TestNotificationResult struct {
	Delivered bool
	History   *entity.NotificationHistory
}

// WatchStatus is a snapshot of the background search for one preference.
type WatchStatus struct {
	PreferenceID    uint       `json:"preference_id"`
	Watching        bool       `json:"watching"`
	LastChecked     *time.Time `json:"last_checked,omitempty"`
	NotifiedMatches int        `json:"notified_matches"`
}

// NotificationUsecase defines the notification preference lifecycle.
type NotificationUsecase interface {
	CreateNotificationPreference(ctx context.Context, userID uint, input *CreatePreferenceInput) (*entity.NotificationPreference, error)
	GetNotificationPreferences(ctx context.Context, userID uint, activeOnly bool) ([]*entity.NotificationPreference, error)
	GetNotificationPreference(ctx context.Context, id uint) (*entity.NotificationPreference, error)
	UpdateNotificationPreference(ctx context.Context, id uint, input *UpdatePreferenceInput) (*entity.NotificationPreference, error)
	DeleteNotificationPreference(ctx context.Context, id uint) error
	GetNotificationHistory(ctx context.Context, id uint, limit int) ([]*entity.NotificationHistory, error)
	SendTestNotification(ctx context.Context, id uint) (*TestNotificationResult, error)

	StartBackgroundSearch(ctx context.Context, id uint) (*WatchStatus, error)
	// StopBackgroundSearch succeeds for preferences that are not being watched.
	StopBackgroundSearch(ctx context.Context, id uint) (*WatchStatus, error)
	GetBackgroundSearchStatus(ctx context.Context, id uint) (*WatchStatus, error)

	// GetBookingQRCode renders the booking link of the preference's target as a PNG.
	GetBookingQRCode(ctx context.Context, id uint) ([]byte, error)
}

// Watcher runs the periodic availability check of active preferences.
type Watcher interface {
	// Watch starts checking pref, replacing a running check for the same id.
	Watch(pref *entity.NotificationPreference) error
	Unwatch(id uint)
	Status(id uint) WatchStatus
}
