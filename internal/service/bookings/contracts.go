package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository контакты студентов для преподавателя
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
