package repository

import (
	"context"
	"errors"

	"campwatch/internal/domain/entity"
)

// ErrPreferenceNotFound is returned when a notification preference does not exist.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// NotificationPreferenceRepository persists the users' watch preferences.
type NotificationPreferenceRepository interface {
	// Create persists a new preference and fills its generated fields.
	Create(ctx context.Context, pref *entity.NotificationPreference) error

	// FindByID retrieves a preference by its ID.
	FindByID(ctx context.Context, id uint) (*entity.NotificationPreference, error)

	// FindByUser lists a user's preferences, optionally only the active ones, oldest first.
	FindByUser(ctx context.Context, userID uint, activeOnly bool) ([]*entity.NotificationPreference, error)

	// FindActive lists every active preference across users.
	FindActive(ctx context.Context) ([]*entity.NotificationPreference, error)

	// Update overwrites a stored preference.
	Update(ctx context.Context, pref *entity.NotificationPreference) error

	// Delete hard-deletes a preference. Returns ErrPreferenceNotFound if nothing was removed.
	Delete(ctx context.Context, id uint) error
}

// NotificationHistoryRepository persists delivery attempts.
type NotificationHistoryRepository interface {
	// Create appends one history row.
	Create(ctx context.Context, history *entity.NotificationHistory) error

	// FindByPreference returns at most limit rows for a preference, newest first.
	FindByPreference(ctx context.Context, preferenceID uint, limit int) ([]*entity.NotificationHistory, error)

	// DetachPreference clears preference_id on every row that references the preference.
	DetachPreference(ctx context.Context, preferenceID uint) error
}
