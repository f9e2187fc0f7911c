package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"mercator-hq/callisto/pkg/config"
)

// Scheduler runs history retention pruning on a cron schedule
// (e.g. "0 3 * * *" for daily at 3 AM).
type Scheduler struct {
	store   *Store
	cfg     config.StoreConfig
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewScheduler creates a retention scheduler for the given store.
func NewScheduler(store *Store, cfg config.StoreConfig) *Scheduler {
	return &Scheduler{
		store:  store,
		cfg:    cfg,
		cron:   cron.New(),
		logger: slog.Default().With("component", "store.scheduler"),
	}
}

// Start begins scheduled pruning. It does nothing when no schedule or no
// retention period is configured. The scheduler stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.PruneSchedule == "" || s.cfg.RetentionDays <= 0 {
		s.logger.Info("retention pruning not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.cfg.PruneSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.cfg.PruneSchedule, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.PruneSchedule, s.runPruning); err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", s.cfg.PruneSchedule,
		"retention_days", s.cfg.RetentionDays,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// pruneTimeout bounds a single pruning pass.
const pruneTimeout = time.Minute

// runPruning executes one pruning pass. It derives its own timeout context:
// a pass fired during shutdown must still complete rather than fail with the
// process context's cancellation.
func (s *Scheduler) runPruning() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)
	deleted, err := s.store.Prune(ctx, cutoff)
	if err != nil {
		s.logger.Error("scheduled pruning failed", "error", err)
		return
	}
	s.logger.Debug("scheduled pruning complete", "deleted", deleted)
}

// Stop stops the scheduler and waits for a running pruning pass to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("retention scheduler stopped")
}
