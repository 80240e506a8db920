package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон преподавателей
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Availability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// UserRepository профили преподавателей для подписи окон
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
