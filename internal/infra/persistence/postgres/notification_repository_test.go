package postgres

import (
	"testing"

	"campwatch/internal/domain/entity"
	"campwatch/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	repo := NewPreferenceRepository(db)

	pref := createTestPreference(t, db, user.ID, true)
	assert.NotZero(t, pref.ID)

	stored, err := repo.FindByID(t.Context(), pref.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, "2025-07-01", stored.StartDate.String())
	assert.Equal(t, "2025-07-04", stored.EndDate.String())
	assert.True(t, stored.IsActive)
	require.NotNil(t, stored.CampgroundID)
	assert.Equal(t, int64(1001), *stored.CampgroundID)
	assert.Nil(t, stored.CampsiteID)
}

func TestPreferenceRepository_CreateUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)

	start, _ := entity.ParseDate("2025-07-01")
	err := repo.Create(t.Context(), &entity.NotificationPreference{
		UserID:      77,
		StartDate:   start,
		EndDate:     start.AddDays(1),
		PhoneNumber: "+15550001111",
		IsActive:    true,
	})
	assert.Error(t, err)
}

func TestPreferenceRepository_FindByUserAndActive(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	repo := NewPreferenceRepository(db)
	ctx := t.Context()

	first := createTestPreference(t, db, alice.ID, true)
	second := createTestPreference(t, db, alice.ID, true)
	createTestPreference(t, db, bob.ID, true)

	second.IsActive = false
	require.NoError(t, repo.Update(ctx, second))

	all, err := repo.FindByUser(ctx, alice.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	active, err := repo.FindByUser(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	everyone, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, everyone, 2)
}

func TestPreferenceRepository_Update(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	repo := NewPreferenceRepository(db)
	ctx := t.Context()

	pref := createTestPreference(t, db, user.ID, true)
	pref.EndDate = pref.StartDate.AddDays(7)
	pref.CampsiteID = ptr(int64(2001))
	pref.PhoneNumber = "+15552223333"
	require.NoError(t, repo.Update(ctx, pref))

	stored, err := repo.FindByID(ctx, pref.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-08", stored.EndDate.String())
	assert.Equal(t, int64(2001), *stored.CampsiteID)
	assert.Equal(t, "+15552223333", stored.PhoneNumber)

	missing := *pref
	missing.ID = 4040
	assert.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrPreferenceNotFound)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	repo := NewPreferenceRepository(db)
	ctx := t.Context()

	pref := createTestPreference(t, db, user.ID, true)
	require.NoError(t, repo.Delete(ctx, pref.ID))

	_, err := repo.FindByID(ctx, pref.ID)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, pref.ID), repository.ErrPreferenceNotFound)
}

func TestHistoryRepository_NewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	pref := createTestPreference(t, db, user.ID, true)
	other := createTestPreference(t, db, user.ID, true)
	repo := NewHistoryRepository(db)
	ctx := t.Context()

	for i, p := range []uint{pref.ID, pref.ID, pref.ID, other.ID} {
		require.NoError(t, repo.Create(ctx, &entity.NotificationHistory{
			UserID:           user.ID,
			PreferenceID:     ptr(p),
			NotificationType: entity.NotificationTypeSMS,
			Message:          "Test notification sent successfully",
			SentAt:           at(i),
			Success:          true,
		}))
	}

	rows, err := repo.FindByPreference(ctx, pref.ID, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].SentAt.After(rows[1].SentAt))
	assert.True(t, at(2).Equal(rows[0].SentAt))

	all, err := repo.FindByPreference(ctx, pref.ID, 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTransactionManager_DeleteKeepsOrphanedHistory(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	pref := createTestPreference(t, db, user.ID, true)
	ctx := t.Context()

	history := &entity.NotificationHistory{
		UserID:           user.ID,
		PreferenceID:     ptr(pref.ID),
		NotificationType: entity.NotificationTypeSMS,
		Message:          "Test notification sent successfully",
		SentAt:           at(0),
		Success:          true,
	}
	require.NoError(t, NewHistoryRepository(db).Create(ctx, history))

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewHistoryRepository().DetachPreference(ctx, pref.ID); err != nil {
			return err
		}

		return factory.NewPreferenceRepository().Delete(ctx, pref.ID)
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("notification_history").Where("preference_id IS NULL").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "camper@example.com")
	pref := createTestPreference(t, db, user.ID, true)
	ctx := t.Context()

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewPreferenceRepository().Delete(ctx, pref.ID); err != nil {
			return err
		}

		return factory.NewPreferenceRepository().Delete(ctx, 9999)
	})
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)

	_, err = NewPreferenceRepository(db).FindByID(ctx, pref.ID)
	assert.NoError(t, err)
}
