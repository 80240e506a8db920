package memory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
)

type availabilityRecord struct {
	availability domain.Availability
}

// Availabilities окна преподавателей в памяти
type Availabilities struct {
	s *Store
}

func (r *Availabilities) Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error) {
	rec := &availabilityRecord{availability: *a}
	rec.availability.ID = r.s.newID()

	r.s.write(ctx, func() {
		r.s.availabilities = append(r.s.availabilities, rec)
	})

	out := rec.availability
	return &out, nil
}

func (r *Availabilities) GetByTeacherAndDate(_ context.Context, teacherID string, date time.Time) ([]*domain.Availability, error) {
	return r.filter(func(a *domain.Availability) bool {
		return a.TeacherID == teacherID && clock.SameDay(a.TargetDate, date)
	}), nil
}

func (r *Availabilities) GetByDate(_ context.Context, date time.Time) ([]*domain.Availability, error) {
	return r.filter(func(a *domain.Availability) bool {
		return clock.SameDay(a.TargetDate, date)
	}), nil
}

// LockTeacherDay транзакции в памяти уже последовательны
func (r *Availabilities) LockTeacherDay(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func (r *Availabilities) filter(match func(a *domain.Availability) bool) []*domain.Availability {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var result []*domain.Availability
	for _, rec := range r.s.availabilities {
		if match(&rec.availability) {
			out := rec.availability
			result = append(result, &out)
		}
	}
	return result
}

