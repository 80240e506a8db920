package publish_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон преподавателей
type AvailabilityRepository interface {
	Create(ctx context.Context, a *domain.Availability) (*domain.Availability, error)
	GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) ([]*domain.Availability, error)
	LockTeacherDay(ctx context.Context, teacherID string, date time.Time) error
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
