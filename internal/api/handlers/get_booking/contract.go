package get_booking

import (
	"context"

	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetStudentBooking(ctx context.Context, bookingID, studentID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
