package postgres

import (
	"context"

	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"
	"campwatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.NotificationPreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.NotificationPreferenceRepository {
	return &preferenceRepository{db: db}
}

// Create persists a new notification preference.
func (repo *preferenceRepository) Create(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := fromPreferenceDomain(pref)

	if err := repo.db.WithContext(ctx).Omit("User").Create(prefM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("preference references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required preference information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification preference")
	}

	pref.ID = prefM.ID
	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// FindByID retrieves a preference by its ID.
func (repo *preferenceRepository) FindByID(ctx context.Context, id uint) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preference by id")
	}

	return toPreferenceDomain(&prefM), nil
}

// FindByUser lists a user's preferences in creation order.
func (repo *preferenceRepository) FindByUser(ctx context.Context, userID uint, activeOnly bool) ([]*entity.NotificationPreference, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var prefModels []*model.NotificationPreferenceModel
	if err := query.Order("id ASC").Find(&prefModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification preferences by user")
	}

	return toPreferenceDomains(prefModels), nil
}

// FindActive lists every active preference.
func (repo *preferenceRepository) FindActive(ctx context.Context) ([]*entity.NotificationPreference, error) {
	var prefModels []*model.NotificationPreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&prefModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active notification preferences")
	}

	return toPreferenceDomains(prefModels), nil
}

// Update overwrites every column of a stored preference.
func (repo *preferenceRepository) Update(ctx context.Context, pref *entity.NotificationPreference) error {
	prefM := fromPreferenceDomain(pref)

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationPreferenceModel{ID: pref.ID}).
		Select("*").
		Omit("id", "user_id", "created_at", "User").
		Updates(prefM)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required preference information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update notification preference")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// Delete hard-deletes a preference.
func (repo *preferenceRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.NotificationPreferenceModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notification preference")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPreferenceNotFound
	}

	return nil
}

// historyRepository implements the repository.NotificationHistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.NotificationHistoryRepository {
	return &historyRepository{db: db}
}

// Create appends a delivery record.
func (repo *historyRepository) Create(ctx context.Context, history *entity.NotificationHistory) error {
	historyM := fromHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Omit("User", "Preference").Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "history references an unknown user or preference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification history")
	}

	history.ID = historyM.ID
	history.SentAt = historyM.SentAt

	return nil
}

// FindByPreference returns the newest rows first.
func (repo *historyRepository) FindByPreference(ctx context.Context, preferenceID uint, limit int) ([]*entity.NotificationHistory, error) {
	query := repo.db.WithContext(ctx).
		Where("preference_id = ?", preferenceID).
		Order("sent_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var historyModels []*model.NotificationHistoryModel
	if err := query.Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification history by preference")
	}

	histories := make([]*entity.NotificationHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toHistoryDomain(historyM))
	}

	return histories, nil
}

// DetachPreference orphans the history of a preference about to be deleted.
func (repo *historyRepository) DetachPreference(ctx context.Context, preferenceID uint) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationHistoryModel{}).
		Where("preference_id = ?", preferenceID).
		Update("preference_id", nil).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach notification history")
	}

	return nil
}

// --- Mapper Functions ---

func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreference {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreference{
		ID:                 data.ID,
		UserID:             data.UserID,
		RecreationAreaID:   data.RecreationAreaID,
		RecreationAreaName: data.RecreationAreaName,
		CampgroundID:       data.CampgroundID,
		CampgroundName:     data.CampgroundName,
		CampsiteID:         data.CampsiteID,
		CampsiteName:       data.CampsiteName,
		StartDate:          entity.NewDate(data.StartDate),
		EndDate:            entity.NewDate(data.EndDate),
		PhoneNumber:        data.PhoneNumber,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toPreferenceDomains(models []*model.NotificationPreferenceModel) []*entity.NotificationPreference {
	prefs := make([]*entity.NotificationPreference, 0, len(models))
	for _, prefM := range models {
		prefs = append(prefs, toPreferenceDomain(prefM))
	}

	return prefs
}

func fromPreferenceDomain(data *entity.NotificationPreference) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		RecreationAreaID:   data.RecreationAreaID,
		RecreationAreaName: data.RecreationAreaName,
		CampgroundID:       data.CampgroundID,
		CampgroundName:     data.CampgroundName,
		CampsiteID:         data.CampsiteID,
		CampsiteName:       data.CampsiteName,
		StartDate:          data.StartDate.Time,
		EndDate:            data.EndDate.Time,
		PhoneNumber:        data.PhoneNumber,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toHistoryDomain(data *model.NotificationHistoryModel) *entity.NotificationHistory {
	if data == nil {
		return nil
	}

	return &entity.NotificationHistory{
		ID:               data.ID,
		UserID:           data.UserID,
		PreferenceID:     data.PreferenceID,
		CampsiteID:       data.CampsiteID,
		CampsiteName:     data.CampsiteName,
		NotificationType: data.NotificationType,
		Message:          data.Message,
		SentAt:           data.SentAt,
		Success:          data.Success,
		ErrorMessage:     data.ErrorMessage,
	}
}

func fromHistoryDomain(data *entity.NotificationHistory) *model.NotificationHistoryModel {
	if data == nil {
		return nil
	}

	return &model.NotificationHistoryModel{
		ID:               data.ID,
		UserID:           data.UserID,
		PreferenceID:     data.PreferenceID,
		CampsiteID:       data.CampsiteID,
		CampsiteName:     data.CampsiteName,
		NotificationType: data.NotificationType,
		Message:          data.Message,
		SentAt:           data.SentAt,
		Success:          data.Success,
		ErrorMessage:     data.ErrorMessage,
	}
}
