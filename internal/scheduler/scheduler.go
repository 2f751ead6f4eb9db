package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"noaa-forecast/internal/weather"
)

// Refresher is the weather service as seen by the scheduler
type Refresher interface {
	Refresh(ctx context.Context) (*weather.Snapshot, error)
}

// Scheduler refreshes the forecast on a fixed interval. Runs never overlap;
// a run that is still fetching when the next one is due causes that one to
// be skipped.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
	delay     time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a scheduler that first refreshes after delay and then every
// interval. Each run is bounded by timeout.
func New(refresher Refresher, interval, delay, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		interval:  interval,
		delay:     delay,
		timeout:   timeout,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start schedules the refresh job and starts the underlying scheduler
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("invalid refresh interval %v", s.interval)
	}

	job := s.scheduler.Every(s.interval).SingletonMode()
	if s.delay > 0 {
		job = job.StartAt(time.Now().Add(s.delay))
	}

	if _, err := job.Do(s.run); err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	s.logger.Info("scheduler started",
		"interval", s.interval,
		"delay", s.delay,
	)

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future runs
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	snapshot, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("forecast refresh failed", "error", err)
		return
	}

	s.logger.Debug("forecast refresh completed",
		"token", snapshot.Token,
		"duration", time.Since(start),
	)
}
