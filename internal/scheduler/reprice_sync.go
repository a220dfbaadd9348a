package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/repository"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing"
)

// RepriceSyncConfig holds the scheduling knobs for the periodic reprice run.
type RepriceSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// SyncStatus is a snapshot of the reprice job for the status endpoint.
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastRepriced    int        `json:"last_repriced"`
	LastFailed      int        `json:"last_failed"`
}

// RepriceSyncService refreshes the pricing of posted listings on a cron
// schedule, so stale asking prices follow the market.
type RepriceSyncService struct {
	scheduler           *gocron.Scheduler
	config              RepriceSyncConfig
	listingRepo         repository.ListingRepository
	pricer              pricing.Pricer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRepriced        int
	lastFailed          int
}

func NewRepriceSyncService(
	listingRepo repository.ListingRepository,
	pricer pricing.Pricer,
	appConfig *config.Config,
) *RepriceSyncService {
	syncConfig := RepriceSyncConfig{
		CronSchedule:        appConfig.RepriceSync.CronSchedule,
		RequestDelaySeconds: appConfig.RepriceSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.RepriceSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Reprice sync scheduler configuration loaded")

	return &RepriceSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		listingRepo: listingRepo,
		pricer:      pricer,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
func (s *RepriceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reprice sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting reprice sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPrices(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling reprice sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping reprice sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow triggers one reprice run outside the schedule. The run is detached
// from the caller: an HTTP request context would be canceled as soon as the
// handler responds, killing the run on its first iteration. It returns false
// when a run is already in progress.
func (s *RepriceSyncService) RunNow() bool {
	s.syncMutex.Lock()
	alreadyRunning := s.syncRunning
	s.syncMutex.Unlock()

	if alreadyRunning {
		return false
	}

	go s.syncAllPrices(context.Background())
	return true
}

// Status reports the current and last run of the reprice job.
func (s *RepriceSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:      s.syncRunning,
		LastRepriced: s.lastRepriced,
		LastFailed:   s.lastFailed,
	}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *RepriceSyncService) syncAllPrices(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reprice sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	repriced, failed := s.repriceListings(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRepriced = repriced
	s.lastFailed = failed
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"repriced": repriced,
		"failed":   failed,
	}).Info("Reprice sync finished")
}

func (s *RepriceSyncService) repriceListings(ctx context.Context) (repriced, failed int) {
	listings, err := s.listingRepo.List(domain.ListingFilters{Status: domain.ListingStatusPosted})
	if err != nil {
		logrus.WithError(err).Error("Reprice sync: listing posted listings failed")
		return 0, 0
	}

	delay := time.Duration(s.config.RequestDelaySeconds) * time.Second

	for i, item := range listings {
		if ctx.Err() != nil {
			logrus.Info("Reprice sync canceled")
			return repriced, failed
		}

		result, err := s.pricer.EstimateForItem(ctx, item.ItemName, item.Condition)
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"listing_id": item.ID,
				"error":      err.Error(),
			}).Warn("Reprice sync: estimation failed")
			continue
		}

		item.Pricing = result
		item.UpdatedAt = time.Now().UTC()
		if err := s.listingRepo.Update(item); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"listing_id": item.ID,
				"error":      err.Error(),
			}).Warn("Reprice sync: persisting new pricing failed")
			continue
		}

		repriced++

		// Spread requests out so the marketplace APIs are not hammered.
		if delay > 0 && i < len(listings)-1 {
			time.Sleep(delay)
		}
	}

	return repriced, failed
}
