package auto_assign

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/lock"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reservation"
)

// UserRepository источник активных студентов
type UserRepository interface {
	ListActiveStudents(ctx context.Context) ([]*domain.User, error)
}

// AvailabilityRepository интерфейс репозитория окон преподавателей
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Availability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// Reserver атомарная запись в слот
type Reserver interface {
	Reserve(ctx context.Context, req reservation.Request) (*domain.Booking, error)
}

// Locker исключает параллельные прогоны на одну дату
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (lock.Release, bool, error)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Metrics счетчики прогонов
type Metrics interface {
	IncSweepRun(result string)
	AddSweepAssigned(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
