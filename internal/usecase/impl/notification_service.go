package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campwatch/config"
	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"
	"campwatch/internal/domain/service"
	"campwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	testNotificationTitle   = "Campsite watch"
	testNotificationBody    = "Test notification from Camply Web Interface"
	testNotificationSent    = "Test notification sent successfully"
	testNotificationFailure = "Test notification failed"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	prefRepo       repository.NotificationPreferenceRepository
	historyRepo    repository.NotificationHistoryRepository
	sender         service.MessageSender
	watcher        usecase.Watcher
	qrCodeService  service.QRCodeService
	bookingBaseURL string
	logger         *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	PreferenceRepo repository.NotificationPreferenceRepository
	HistoryRepo    repository.NotificationHistoryRepository
	Sender         service.MessageSender
	Watcher        usecase.Watcher
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	bookingBaseURL := ""
	if params.Config != nil && params.Config.RecreationGov != nil {
		bookingBaseURL = strings.TrimRight(params.Config.RecreationGov.BookingBaseURL, "/")
	}

	return &notificationService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		prefRepo:       params.PreferenceRepo,
		historyRepo:    params.HistoryRepo,
		sender:         params.Sender,
		watcher:        params.Watcher,
		qrCodeService:  params.QRCodeService,
		bookingBaseURL: bookingBaseURL,
		logger:         params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) CreateNotificationPreference(
	ctx context.Context,
	userID uint,
	input *usecase.CreatePreferenceInput,
) (*entity.NotificationPreference, error) {
	pref := &entity.NotificationPreference{
		UserID:             userID,
		RecreationAreaID:   input.RecreationAreaID,
		RecreationAreaName: input.RecreationAreaName,
		CampgroundID:       input.CampgroundID,
		CampgroundName:     input.CampgroundName,
		CampsiteID:         input.CampsiteID,
		CampsiteName:       input.CampsiteName,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		PhoneNumber:        input.PhoneNumber,
		IsActive:           true,
	}
	if !pref.HasValidDateRange() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserError(err, fmt.Sprintf("user %d", userID))
	}

	if err := srv.prefRepo.Create(ctx, pref); err != nil {
		srv.log(ctx).Error("Failed to create notification preference", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create notification preference")
	}
	srv.log(ctx).Info("Notification preference created", slog.Any("preferenceID", pref.ID), slog.Any("userID", userID))

	srv.startWatch(ctx, pref)

	return pref, nil
}

func (srv *notificationService) GetNotificationPreferences(ctx context.Context, userID uint, activeOnly bool) ([]*entity.NotificationPreference, error) {
	prefs, err := srv.prefRepo.FindByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification preferences")
	}

	return prefs, nil
}

func (srv *notificationService) GetNotificationPreference(ctx context.Context, id uint) (*entity.NotificationPreference, error) {
	pref, err := srv.prefRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPreferenceError(err, "failed to find notification preference")
	}

	return pref, nil
}

// UpdateNotificationPreference re-checks the date range against the merged record.
// A watch that was running is restarted so the new criteria apply.
func (srv *notificationService) UpdateNotificationPreference(
	ctx context.Context,
	id uint,
	input *usecase.UpdatePreferenceInput,
) (*entity.NotificationPreference, error) {
	existing, err := srv.GetNotificationPreference(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	applyPreferenceUpdate(&merged, input)
	if !merged.HasValidDateRange() {
		return nil, domainerrors.ErrInvalidDateRange
	}

	if err := srv.prefRepo.Update(ctx, &merged); err != nil {
		return nil, mapPreferenceError(err, "failed to update notification preference")
	}

	switch {
	case !merged.IsActive:
		srv.watcher.Unwatch(id)
	case !existing.IsActive || srv.watcher.Status(id).Watching:
		srv.startWatch(ctx, &merged)
	}

	return &merged, nil
}

func applyPreferenceUpdate(pref *entity.NotificationPreference, input *usecase.UpdatePreferenceInput) {
	input.RecreationAreaID.Apply(&pref.RecreationAreaID)
	input.RecreationAreaName.Apply(&pref.RecreationAreaName)
	input.CampgroundID.Apply(&pref.CampgroundID)
	input.CampgroundName.Apply(&pref.CampgroundName)
	input.CampsiteID.Apply(&pref.CampsiteID)
	input.CampsiteName.Apply(&pref.CampsiteName)
	if input.StartDate != nil {
		pref.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		pref.EndDate = *input.EndDate
	}
	if input.PhoneNumber != nil {
		pref.PhoneNumber = *input.PhoneNumber
	}
	if input.IsActive != nil {
		pref.IsActive = *input.IsActive
	}
}

// DeleteNotificationPreference removes the preference and keeps its history rows detached.
func (srv *notificationService) DeleteNotificationPreference(ctx context.Context, id uint) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewHistoryRepository().DetachPreference(ctx, id); err != nil {
			return err
		}

		return factory.NewPreferenceRepository().Delete(ctx, id)
	})
	if err != nil {
		return mapPreferenceError(err, "failed to delete notification preference")
	}

	srv.watcher.Unwatch(id)
	srv.log(ctx).Info("Notification preference deleted", slog.Any("preferenceID", id))

	return nil
}

func (srv *notificationService) GetNotificationHistory(ctx context.Context, id uint, limit int) ([]*entity.NotificationHistory, error) {
	if limit < 1 || limit > usecase.MaxHistoryLimit {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100")
	}

	history, err := srv.historyRepo.FindByPreference(ctx, id, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification history")
	}

	return history, nil
}

// SendTestNotification records exactly one history row once the preference is found,
// whatever the delivery outcome.
func (srv *notificationService) SendTestNotification(ctx context.Context, id uint) (*usecase.TestNotificationResult, error) {
	pref, err := srv.GetNotificationPreference(ctx, id)
	if err != nil {
		return nil, err
	}

	sendErr := srv.sender.Send(ctx, &service.Message{
		To:    pref.PhoneNumber,
		Title: testNotificationTitle,
		Body:  testNotificationBody,
	})

	history := &entity.NotificationHistory{
		UserID:           pref.UserID,
		PreferenceID:     &pref.ID,
		NotificationType: srv.sender.Channel(),
		Message:          testNotificationSent,
		SentAt:           time.Now().UTC(),
		Success:          sendErr == nil,
	}
	if sendErr != nil {
		srv.log(ctx).Warn("Test notification delivery failed", slog.Any("preferenceID", id), slog.Any("error", sendErr))
		errMsg := sendErr.Error()
		history.Message = testNotificationFailure
		history.ErrorMessage = &errMsg
	}

	if err := srv.historyRepo.Create(ctx, history); err != nil {
		srv.log(ctx).Error("Failed to record test notification", slog.Any("preferenceID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record notification history")
	}

	return &usecase.TestNotificationResult{
		Delivered: sendErr == nil,
		History:   history,
	}, nil
}

func (srv *notificationService) StartBackgroundSearch(ctx context.Context, id uint) (*usecase.WatchStatus, error) {
	pref, err := srv.GetNotificationPreference(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pref.IsActive {
		return nil, domainerrors.ErrPreferenceInactive
	}

	if err := srv.watcher.Watch(pref); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Background search started", slog.Any("preferenceID", id))

	status := srv.watcher.Status(id)

	return &status, nil
}

func (srv *notificationService) StopBackgroundSearch(ctx context.Context, id uint) (*usecase.WatchStatus, error) {
	srv.watcher.Unwatch(id)
	srv.log(ctx).Info("Background search stopped", slog.Any("preferenceID", id))

	status := srv.watcher.Status(id)

	return &status, nil
}

func (srv *notificationService) GetBackgroundSearchStatus(ctx context.Context, id uint) (*usecase.WatchStatus, error) {
	if _, err := srv.GetNotificationPreference(ctx, id); err != nil {
		return nil, err
	}

	status := srv.watcher.Status(id)

	return &status, nil
}

func (srv *notificationService) GetBookingQRCode(ctx context.Context, id uint) ([]byte, error) {
	pref, err := srv.GetNotificationPreference(ctx, id)
	if err != nil {
		return nil, err
	}

	url := srv.bookingURL(pref)
	if url == "" {
		return nil, domainerrors.ErrNoBookingTarget
	}

	png, err := srv.qrCodeService.GenerateURLQR(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render booking QR code")
	}

	return png, nil
}

// bookingURL points at the most specific bookable page of the preference. A campsite
// alone is not a target, matching what the watcher accepts.
func (srv *notificationService) bookingURL(pref *entity.NotificationPreference) string {
	switch {
	case !pref.HasTarget():
		return ""
	case pref.CampsiteID != nil:
		return fmt.Sprintf("%s/camping/campsites/%d", srv.bookingBaseURL, *pref.CampsiteID)
	case pref.CampgroundID != nil:
		return fmt.Sprintf("%s/camping/campgrounds/%d", srv.bookingBaseURL, *pref.CampgroundID)
	case pref.RecreationAreaID != nil:
		return fmt.Sprintf("%s/camping/gateways/%d", srv.bookingBaseURL, *pref.RecreationAreaID)
	default:
		return ""
	}
}

// startWatch is best effort: the preference is stored whether or not the watch starts.
func (srv *notificationService) startWatch(ctx context.Context, pref *entity.NotificationPreference) {
	err := srv.watcher.Watch(pref)
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrWatcherDisabled), errors.Is(err, domainerrors.ErrNoBookingTarget):
		srv.log(ctx).Debug("Preference not watched", slog.Any("preferenceID", pref.ID), slog.Any("reason", err))
	default:
		srv.log(ctx).Warn("Failed to start watch", slog.Any("preferenceID", pref.ID), slog.Any("error", err))
	}
}

func mapPreferenceError(err error, message string) error {
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		return errors.Wrap(domainerrors.ErrPreferenceNotFound, message)
	}

	return errors.Wrap(err, message)
}
