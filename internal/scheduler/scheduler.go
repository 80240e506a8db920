package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
)

// Sweeper прогон автоназначения
type Sweeper interface {
	Execute(ctx context.Context) (*auto_assign.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически запускает автоназначение
type Scheduler struct {
	sweeper    Sweeper
	interval   time.Duration
	runOnStart bool
	logger     Logger

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func New(sweeper Sweeper, interval time.Duration, runOnStart bool, logger Logger) *Scheduler {
	return &Scheduler{
		sweeper:    sweeper,
		interval:   interval,
		runOnStart: runOnStart,
		logger:     logger,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start запускает цикл в отдельной горутине. Цикл завершается по Stop или отмене ctx
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Scheduler: started, interval=%s run_on_start=%t", s.interval, s.runOnStart)
	go s.loop(ctx)
}

// Stop останавливает цикл и ждет завершения текущего прогона
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
	s.logger.Info("Scheduler: stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)

	if s.runOnStart {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	result, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Error("Scheduler: sweep failed: %v", err)
		return
	}

	if result.Skipped {
		s.logger.Warn("Scheduler: sweep for %s skipped, another run holds the lock",
			result.TargetDate.Format(domain.DateFormat))
		return
	}

	s.logger.Info("Scheduler: sweep for %s assigned=%d unassigned=%d already_booked=%d free_seats=%d",
		result.TargetDate.Format(domain.DateFormat), result.Assigned, len(result.Unassigned), result.AlreadyBooked, result.FreeSeats)
}
