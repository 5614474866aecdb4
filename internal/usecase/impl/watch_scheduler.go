package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"campwatch/config"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"
	"campwatch/internal/domain/service"
	"campwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	availabilityTitle     = "Campsite available"
	fallbackWatchInterval = 10 * time.Minute
)

var _ usecase.Watcher = (*WatchScheduler)(nil)

// WatchSchedulerParams holds dependencies for WatchScheduler, injected by Fx.
type WatchSchedulerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Config         *config.Config
	PreferenceRepo repository.NotificationPreferenceRepository
	HistoryRepo    repository.NotificationHistoryRepository
	Search         service.SearchProvider
	Availability   service.AvailabilityProvider
	Sender         service.MessageSender
	Logger         *slog.Logger
}

// WatchScheduler keeps one polling goroutine per watched preference.
type WatchScheduler struct {
	enabled      bool
	interval     time.Duration
	prefRepo     repository.NotificationPreferenceRepository
	historyRepo  repository.NotificationHistoryRepository
	search       service.SearchProvider
	availability service.AvailabilityProvider
	sender       service.MessageSender
	logger       *slog.Logger
	now          func() time.Time

	baseCtx   context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup

	// opMu serializes Watch, Unwatch and Shutdown; mu guards entries.
	opMu    sync.Mutex
	mu      sync.Mutex
	entries map[uint]*watchEntry
	closed  bool
}

type matchKey struct {
	campsiteID int64
	night      string
}

type availabilityMatch struct {
	CampsiteID   int64
	CampsiteName string
	Night        entity.Date
}

type watchEntry struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	lastChecked time.Time
	notified    map[matchKey]struct{}
}

// NewWatchScheduler creates the scheduler and ties it to the application lifecycle:
// active preferences are resumed on start and every watch is cancelled and awaited on stop.
func NewWatchScheduler(params WatchSchedulerParams) *WatchScheduler {
	enabled, interval := false, fallbackWatchInterval
	if cfg := params.Config.Watcher; cfg != nil {
		enabled = cfg.Enabled
		if cfg.Interval > 0 {
			interval = cfg.Interval
		}
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	scheduler := &WatchScheduler{
		enabled:      enabled,
		interval:     interval,
		prefRepo:     params.PreferenceRepo,
		historyRepo:  params.HistoryRepo,
		search:       params.Search,
		availability: params.Availability,
		sender:       params.Sender,
		logger:       params.Logger.With(slog.String("component", "watcher")),
		now:          time.Now,
		baseCtx:      baseCtx,
		cancelAll:    cancel,
		entries:      make(map[uint]*watchEntry),
	}

	params.Lc.Append(fx.Hook{
		OnStart: scheduler.Resume,
		OnStop: func(_ context.Context) error {
			scheduler.Shutdown()

			return nil
		},
	})

	return scheduler
}

// Resume starts a watch for every active preference.
func (s *WatchScheduler) Resume(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Background watcher disabled")

		return nil
	}

	prefs, err := s.prefRepo.FindActive(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load active preferences")
	}

	for _, pref := range prefs {
		if err := s.Watch(pref); err != nil {
			s.logger.Warn("Skipping preference on resume", slog.Any("preferenceID", pref.ID), slog.Any("error", err))
		}
	}
	s.logger.Info("Background watcher started", slog.Int("watching", len(s.snapshotIDs())))

	return nil
}

// Watch starts polling pref. A running watch for the same id is stopped first and its
// notified matches are discarded.
func (s *WatchScheduler) Watch(pref *entity.NotificationPreference) error {
	if !s.enabled {
		return domainerrors.ErrWatcherDisabled
	}
	if !pref.IsActive {
		return domainerrors.ErrPreferenceInactive
	}
	if !pref.HasTarget() {
		return domainerrors.ErrNoBookingTarget
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.closed {
		return domainerrors.ErrWatcherDisabled.WrapMessage("watcher is shutting down")
	}

	if old := s.detach(pref.ID, nil); old != nil {
		old.stop()
	}

	ctx, cancel := context.WithCancel(s.baseCtx)
	entry := &watchEntry{
		cancel:   cancel,
		done:     make(chan struct{}),
		notified: make(map[matchKey]struct{}),
	}

	s.mu.Lock()
	s.entries[pref.ID] = entry
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx, pref.ID, entry)
	s.logger.Debug("Watching preference", slog.Any("preferenceID", pref.ID))

	return nil
}

// Unwatch stops the watch for id and waits for it to exit. Unknown ids are ignored.
func (s *WatchScheduler) Unwatch(id uint) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if entry := s.detach(id, nil); entry != nil {
		entry.stop()
		s.logger.Debug("Stopped watching preference", slog.Any("preferenceID", id))
	}
}

func (s *WatchScheduler) Status(id uint) usecase.WatchStatus {
	status := usecase.WatchStatus{PreferenceID: id}

	s.mu.Lock()
	entry, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return status
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	status.Watching = true
	status.NotifiedMatches = len(entry.notified)
	if !entry.lastChecked.IsZero() {
		lastChecked := entry.lastChecked
		status.LastChecked = &lastChecked
	}

	return status
}

// Shutdown cancels every watch and waits for the goroutines to return.
func (s *WatchScheduler) Shutdown() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.closed = true
	s.cancelAll()
	s.wg.Wait()

	s.mu.Lock()
	s.entries = make(map[uint]*watchEntry)
	s.mu.Unlock()
}

// detach removes the entry for id. With a non-nil want it only removes that exact entry.
func (s *WatchScheduler) detach(id uint, want *watchEntry) *watchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || (want != nil && entry != want) {
		return nil
	}
	delete(s.entries, id)

	return entry
}

func (s *WatchScheduler) snapshotIDs() []uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}

	return ids
}

func (s *WatchScheduler) run(ctx context.Context, id uint, entry *watchEntry) {
	defer s.wg.Done()
	defer close(entry.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if !s.check(ctx, id, entry) {
			s.detach(id, entry)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// check runs one polling round and reports whether the watch should continue.
func (s *WatchScheduler) check(ctx context.Context, id uint, entry *watchEntry) bool {
	logger := s.logger.With(slog.Any("preferenceID", id))

	pref, err := s.prefRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			logger.Info("Preference deleted, stopping watch")

			return false
		}
		if ctx.Err() != nil {
			return false
		}
		logger.Warn("Failed to reload preference", slog.Any("error", err))

		return true
	}
	if !pref.IsActive {
		logger.Info("Preference deactivated, stopping watch")

		return false
	}

	today := entity.NewDate(s.now())
	if !today.Before(pref.EndDate) {
		logger.Info("Preference date range has passed, stopping watch")

		return false
	}
	start := pref.StartDate
	if start.Before(today) {
		start = today
	}

	matches, err := s.findMatches(ctx, pref, start)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("Availability check failed", slog.Any("error", err))
		}
		entry.touch(s.now())

		return true
	}

	if fresh := entry.unseen(matches); len(fresh) > 0 {
		if s.notify(ctx, pref, fresh) {
			entry.remember(fresh)
		}
	}
	entry.touch(s.now())

	return true
}

func (s *WatchScheduler) findMatches(ctx context.Context, pref *entity.NotificationPreference, start entity.Date) ([]availabilityMatch, error) {
	campgroundIDs, err := s.resolveCampgrounds(ctx, pref)
	if err != nil {
		return nil, err
	}

	var matches []availabilityMatch
	for _, campgroundID := range campgroundIDs {
		sites, err := s.availability.FindAvailability(ctx, campgroundID, start, pref.EndDate)
		if err != nil {
			return nil, errors.Wrapf(err, "campground %d", campgroundID)
		}

		for _, site := range sites {
			if pref.CampsiteID != nil && site.CampsiteID != *pref.CampsiteID {
				continue
			}
			for _, night := range site.Nights {
				matches = append(matches, availabilityMatch{
					CampsiteID:   site.CampsiteID,
					CampsiteName: site.CampsiteName,
					Night:        night,
				})
			}
		}
	}

	return matches, nil
}

func (s *WatchScheduler) resolveCampgrounds(ctx context.Context, pref *entity.NotificationPreference) ([]int64, error) {
	if pref.CampgroundID != nil {
		return []int64{*pref.CampgroundID}, nil
	}

	campgrounds, err := s.search.FindCampgrounds(ctx, service.CampgroundQuery{RecreationAreaID: pref.RecreationAreaID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campgrounds")
	}
	if len(campgrounds) > maxCascadeCampgrounds {
		campgrounds = campgrounds[:maxCascadeCampgrounds]
	}

	ids := make([]int64, 0, len(campgrounds))
	for _, campground := range campgrounds {
		ids = append(ids, campground.ID)
	}

	return ids, nil
}

// notify sends one message for all fresh matches and records one history row per campsite.
func (s *WatchScheduler) notify(ctx context.Context, pref *entity.NotificationPreference, matches []availabilityMatch) bool {
	sites := groupBySite(matches)
	sendErr := s.sender.Send(ctx, &service.Message{
		To:    pref.PhoneNumber,
		Title: availabilityTitle,
		Body:  availabilityMessage(pref, sites),
		Data: map[string]string{
			"preference_id": strconv.FormatUint(uint64(pref.ID), 10),
		},
	})

	var errMsg *string
	if sendErr != nil {
		msg := sendErr.Error()
		errMsg = &msg
		s.logger.Warn("Failed to deliver availability alert", slog.Any("preferenceID", pref.ID), slog.Any("error", sendErr))
	}

	sentAt := s.now()
	for _, site := range sites {
		history := &entity.NotificationHistory{
			UserID:           pref.UserID,
			PreferenceID:     &pref.ID,
			CampsiteID:       &site.campsiteID,
			CampsiteName:     &site.campsiteName,
			NotificationType: s.sender.Channel(),
			Message:          site.line(),
			SentAt:           sentAt,
			Success:          sendErr == nil,
			ErrorMessage:     errMsg,
		}
		if err := s.historyRepo.Create(ctx, history); err != nil {
			s.logger.Error("Failed to record notification history", slog.Any("preferenceID", pref.ID), slog.Any("error", err))
		}
	}

	return sendErr == nil
}

type siteNights struct {
	campsiteID   int64
	campsiteName string
	nights       []entity.Date
}

func (s siteNights) line() string {
	nights := make([]string, 0, len(s.nights))
	for _, night := range s.nights {
		nights = append(nights, night.String())
	}

	return fmt.Sprintf("%s available: %s", s.campsiteName, strings.Join(nights, ", "))
}

// groupBySite keeps the order in which campsites first appear.
func groupBySite(matches []availabilityMatch) []siteNights {
	index := make(map[int64]int)
	var sites []siteNights
	for _, match := range matches {
		i, ok := index[match.CampsiteID]
		if !ok {
			i = len(sites)
			index[match.CampsiteID] = i
			sites = append(sites, siteNights{campsiteID: match.CampsiteID, campsiteName: match.CampsiteName})
		}
		sites[i].nights = append(sites[i].nights, match.Night)
	}

	return sites
}

func availabilityMessage(pref *entity.NotificationPreference, sites []siteNights) string {
	var b strings.Builder
	b.WriteString("Campsites available")
	if target := targetName(pref); target != "" {
		b.WriteString(" at ")
		b.WriteString(target)
	}
	b.WriteString(":")
	for _, site := range sites {
		b.WriteString("\n- ")
		b.WriteString(site.line())
	}

	return b.String()
}

func targetName(pref *entity.NotificationPreference) string {
	switch {
	case pref.CampgroundName != nil:
		return *pref.CampgroundName
	case pref.RecreationAreaName != nil:
		return *pref.RecreationAreaName
	default:
		return ""
	}
}

func (e *watchEntry) stop() {
	e.cancel()
	<-e.done
}

func (e *watchEntry) touch(at time.Time) {
	e.mu.Lock()
	e.lastChecked = at
	e.mu.Unlock()
}

func (e *watchEntry) unseen(matches []availabilityMatch) []availabilityMatch {
	e.mu.Lock()
	defer e.mu.Unlock()

	var fresh []availabilityMatch
	for _, match := range matches {
		if _, ok := e.notified[match.key()]; !ok {
			fresh = append(fresh, match)
		}
	}

	return fresh
}

func (e *watchEntry) remember(matches []availabilityMatch) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, match := range matches {
		e.notified[match.key()] = struct{}{}
	}
}

func (m availabilityMatch) key() matchKey {
	return matchKey{campsiteID: m.CampsiteID, night: m.Night.String()}
}
