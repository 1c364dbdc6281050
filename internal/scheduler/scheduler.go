package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"forecast-board/internal/board"
)

// Scheduler periodically re-fetches the forecast for whatever location the
// state currently tracks, so the chart stays fresh without user interaction.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *board.Service
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler.
func New(interval time.Duration, service *board.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
// A non-positive interval disables scheduling.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler disabled; forecasts refresh only on demand")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.service.RefreshCurrent(ctx); err != nil {
			// Nothing to refresh until the first location arrives.
			if errors.Is(err, board.ErrNoLocation) {
				return
			}
			s.logger.Warn("scheduled refresh failed", zap.Error(err))
			return
		}
		s.logger.Debug("scheduled refresh completed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
