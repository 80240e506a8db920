package get_teacher_reservations

import (
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
)

type StudentResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

type ReservationResponse struct {
	Booking *handlers.BookingResponse `json:"booking"`
	Student StudentResponse           `json:"student"`
}

// TeacherReservationsResponse HTTP response model
type TeacherReservationsResponse struct {
	Date         string                 `json:"date"`
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

func FromServiceResponse(resp *models.TeacherReservationsResponse) *TeacherReservationsResponse {
	out := &TeacherReservationsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Reservations: make([]*ReservationResponse, 0, len(resp.Reservations)),
		Total:        len(resp.Reservations),
	}
	for _, r := range resp.Reservations {
		out.Reservations = append(out.Reservations, &ReservationResponse{
			Booking: handlers.FromServiceBooking(r.Booking),
			Student: StudentResponse{
				ID:       r.Student.ID,
				FullName: r.Student.FullName,
				Email:    r.Student.Email,
				Phone:    r.Student.Phone,
			},
		})
	}
	return out
}
