package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"campwatch/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(t.Context(), db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email}
	require.NoError(t, NewUserRepository(db).Create(t.Context(), user))

	return user
}

func createTestPreference(t *testing.T, db *gorm.DB, userID uint, active bool) *entity.NotificationPreference {
	t.Helper()

	campgroundID := int64(1001)
	campgroundName := "Many Glacier Campground"
	start, err := entity.ParseDate("2025-07-01")
	require.NoError(t, err)

	pref := &entity.NotificationPreference{
		UserID:         userID,
		CampgroundID:   &campgroundID,
		CampgroundName: &campgroundName,
		StartDate:      start,
		EndDate:        start.AddDays(3),
		PhoneNumber:    "+15550001111",
		IsActive:       active,
	}
	require.NoError(t, NewPreferenceRepository(db).Create(t.Context(), pref))

	return pref
}

func ptr[T any](v T) *T {
	return &v
}

func at(minutes int) time.Time {
	return time.Date(2025, 6, 1, 12, minutes, 0, 0, time.UTC)
}
