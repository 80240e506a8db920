package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) Execute(_ context.Context) (*auto_assign.Result, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &auto_assign.Result{TargetDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)}, nil
}

func TestRunOnStart(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, time.Hour, true, logger.NewNop())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return sw.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), sw.calls.Load())
}

func TestTicks(t *testing.T) {
	sw := &countingSweeper{err: errors.New("store down")}
	s := New(sw, 10*time.Millisecond, false, logger.NewNop())
	s.Start(context.Background())

	// ошибка прогона не останавливает цикл
	assert.Eventually(t, func() bool { return sw.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()
	s.Stop()
}

func TestContextCancelStopsLoop(t *testing.T) {
	sw := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())
	s := New(sw, time.Hour, false, logger.NewNop())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
	assert.Equal(t, int32(0), sw.calls.Load())
}
