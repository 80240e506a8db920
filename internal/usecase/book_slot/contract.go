package book_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/reservation"
)

// AvailabilityRepository интерфейс репозитория окон преподавателей
type AvailabilityRepository interface {
	GetByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) ([]*domain.Availability, error)
}

// Reserver атомарная запись в слот
type Reserver interface {
	Reserve(ctx context.Context, req reservation.Request) (*domain.Booking, error)
}

// Clock источник текущего времени ("завтра" считается от него)
type Clock interface {
	Now() time.Time
}

// Metrics счетчик отказов до обращения к слоту
type Metrics interface {
	IncBookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
