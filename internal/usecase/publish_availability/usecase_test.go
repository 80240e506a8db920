package publish_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

var now = time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)

func newUseCase() (*UseCase, *memory.Store) {
	store := memory.NewStore()
	return NewUseCase(store.Availabilities(), store.TxManager(), clock.NewFixed(now), logger.NewNop()), store
}

func TestExecuteCreatesWindow(t *testing.T) {
	uc, store := newUseCase()
	tomorrow := clock.Tomorrow(now)

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherID: "t1",
		Subject:   " Physics ",
		StartTime: "10:00",
		EndTime:   "12:30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Physics", resp.Subject)
	assert.Equal(t, tomorrow, resp.TargetDate)
	assert.Equal(t, tomorrow.Add(10*time.Hour), resp.WindowStart)
	assert.Equal(t, tomorrow.Add(12*time.Hour+30*time.Minute), resp.WindowEnd)
	assert.Equal(t, domain.DefaultCapacityPerSlot, resp.CapacityPerSlot)
	assert.Equal(t, 3, resp.SlotsCount)

	stored, err := store.Availabilities().GetByTeacherAndDate(context.Background(), "t1", tomorrow)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExecuteOverlap(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{TeacherID: "t1", Subject: "math", StartTime: "10:00", EndTime: "12:00", CapacityPerSlot: 2})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{TeacherID: "t1", Subject: "math", StartTime: "11:00", EndTime: "13:00"})
	assert.ErrorIs(t, err, domain.ErrOverlap)

	// смежное окно допустимо
	_, err = uc.Execute(ctx, &Request{TeacherID: "t1", Subject: "math", StartTime: "12:00", EndTime: "13:00"})
	assert.NoError(t, err)

	// другой преподаватель на то же время
	_, err = uc.Execute(ctx, &Request{TeacherID: "t2", Subject: "math", StartTime: "10:00", EndTime: "12:00"})
	assert.NoError(t, err)
}

func TestExecuteValidation(t *testing.T) {
	uc, _ := newUseCase()
	today := now.Format(domain.DateFormat)
	dayAfter := clock.Tomorrow(now).AddDate(0, 0, 1).Format(domain.DateFormat)

	tests := []struct {
		name string
		req  Request
	}{
		{name: "no subject", req: Request{TeacherID: "t1", StartTime: "10:00", EndTime: "11:00"}},
		{name: "no teacher", req: Request{Subject: "math", StartTime: "10:00", EndTime: "11:00"}},
		{name: "start after end", req: Request{TeacherID: "t1", Subject: "math", StartTime: "12:00", EndTime: "11:00"}},
		{name: "empty window", req: Request{TeacherID: "t1", Subject: "math", StartTime: "11:00", EndTime: "11:00"}},
		{name: "bad time", req: Request{TeacherID: "t1", Subject: "math", StartTime: "ten", EndTime: "11:00"}},
		{name: "signed hour", req: Request{TeacherID: "t1", Subject: "math", StartTime: "+9:00", EndTime: "11:00"}},
		{name: "start at 24:00", req: Request{TeacherID: "t1", Subject: "math", StartTime: "24:00", EndTime: "24:00"}},
		{name: "end after midnight", req: Request{TeacherID: "t1", Subject: "math", StartTime: "22:00", EndTime: "24:30"}},
		{name: "negative capacity", req: Request{TeacherID: "t1", Subject: "math", StartTime: "10:00", EndTime: "11:00", CapacityPerSlot: -1}},
		{name: "huge capacity", req: Request{TeacherID: "t1", Subject: "math", StartTime: "10:00", EndTime: "11:00", CapacityPerSlot: 1000}},
		{name: "today", req: Request{TeacherID: "t1", Subject: "math", Date: today, StartTime: "10:00", EndTime: "11:00"}},
		{name: "day after tomorrow", req: Request{TeacherID: "t1", Subject: "math", Date: dayAfter, StartTime: "10:00", EndTime: "11:00"}},
		{name: "bad date", req: Request{TeacherID: "t1", Subject: "math", Date: "15.10.2026", StartTime: "10:00", EndTime: "11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestExecuteExplicitTomorrow(t *testing.T) {
	uc, _ := newUseCase()
	tomorrow := clock.Tomorrow(now)

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherID:       "t1",
		Subject:         "math",
		Date:            tomorrow.Format(domain.DateFormat),
		StartTime:       "9:00",
		EndTime:         "10:00",
		CapacityPerSlot: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.CapacityPerSlot)
	assert.Equal(t, tomorrow.Add(9*time.Hour), resp.WindowStart)
}

func TestExecuteWindowUntilMidnight(t *testing.T) {
	uc, _ := newUseCase()
	tomorrow := clock.Tomorrow(now)

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherID: "t1",
		Subject:   "math",
		StartTime: "22:00",
		EndTime:   "24:00",
	})
	require.NoError(t, err)
	assert.Equal(t, tomorrow.Add(22*time.Hour), resp.WindowStart)
	assert.Equal(t, tomorrow.AddDate(0, 0, 1), resp.WindowEnd)
	assert.Equal(t, tomorrow, resp.TargetDate)
	assert.Equal(t, 2, resp.SlotsCount)
}

// unknownTeacherRepo имитирует нарушение внешнего ключа teacher_id
type unknownTeacherRepo struct{}

func (unknownTeacherRepo) Create(context.Context, *domain.Availability) (*domain.Availability, error) {
	return nil, fmt.Errorf("%w: Create - teacher=ghost", availabilityRepo.ErrUnknownTeacher)
}

func (unknownTeacherRepo) GetByTeacherAndDate(context.Context, string, time.Time) ([]*domain.Availability, error) {
	return nil, nil
}

func (unknownTeacherRepo) LockTeacherDay(context.Context, string, time.Time) error {
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestExecuteUnknownTeacher(t *testing.T) {
	uc := NewUseCase(unknownTeacherRepo{}, passTx{}, clock.NewFixed(now), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{TeacherID: "ghost", Subject: "math", StartTime: "10:00", EndTime: "11:00"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, errors.Is(err, domain.ErrStoreUnavailable))
}
