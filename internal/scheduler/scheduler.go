package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/reyhsu/wanna-play/internal/poll"
)

// PollManager is the subset of the poll manager the scheduler drives.
type PollManager interface {
	Open() error
	Close() error
}

// PollScheduler fires the weekly poll-open and poll-close jobs. There is
// no misfire catch-up: a trigger missed while the process was down is
// simply skipped.
type PollScheduler struct {
	cronEngine *cron.Cron
	manager    PollManager
	logger     *slog.Logger
	openSpec   string
	closeSpec  string
}

func New(manager PollManager, logger *slog.Logger, openSpec, closeSpec string, loc *time.Location) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(loc)),
		manager:    manager,
		logger:     logger,
		openSpec:   openSpec,
		closeSpec:  closeSpec,
	}
}

// Start registers both jobs and starts the cron engine.
func (s *PollScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.openSpec, s.openJob); err != nil {
		return fmt.Errorf("add open job: %w", err)
	}
	if _, err := s.cronEngine.AddFunc(s.closeSpec, s.closeJob); err != nil {
		return fmt.Errorf("add close job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Info("scheduler started",
		"open_spec", s.openSpec,
		"close_spec", s.closeSpec,
	)
	return nil
}

func (s *PollScheduler) openJob() {
	s.logger.Info("cron triggered: open poll")
	switch err := s.manager.Open(); {
	case err == nil:
	case errors.Is(err, poll.ErrPollActive):
		s.logger.Warn("scheduled open skipped, a poll is still active")
	default:
		s.logger.Error("scheduled open failed", "error", err)
	}
}

func (s *PollScheduler) closeJob() {
	s.logger.Info("cron triggered: close poll")
	switch err := s.manager.Close(); {
	case err == nil:
	case errors.Is(err, poll.ErrNoActivePoll):
		s.logger.Warn("scheduled close skipped, no active poll")
	default:
		s.logger.Error("scheduled close failed", "error", err)
	}
}

// Stop stops the engine and waits for any running job to finish.
func (s *PollScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
