package reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// BookingRepository операции хранилища, из которых собирается атомарная запись в слот
type BookingRepository interface {
	LockSlot(ctx context.Context, slot domain.Slot) error
	CountBySlot(ctx context.Context, slot domain.Slot) (int, error)
	ExistsForStudentOnDate(ctx context.Context, studentID string, date time.Time) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock источник времени booked_at
type Clock interface {
	Now() time.Time
}

// Metrics счетчики созданных и отклоненных бронирований
type Metrics interface {
	IncBookingCreated(source string)
	IncBookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
