package get_teacher_reservations

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetTeacherReservations(ctx context.Context, teacherID string) (*models.TeacherReservationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
