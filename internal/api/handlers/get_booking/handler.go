package get_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	identity, _ := middleware.IdentityFromContext(r.Context())

	// Сервис сам проверит владельца
	booking, err := h.service.GetStudentBooking(r.Context(), bookingID, identity.UserID)
	if err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /students/bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		} else {
			h.logger.Warn("GET /students/bookings/{id} - Rejected: booking_id=%s, student_id=%s, status=%d",
				bookingID, identity.UserID, status)
		}
		return
	}

	h.logger.Info("GET /students/bookings/{id} - Booking retrieved: booking_id=%s, student_id=%s",
		bookingID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceBooking(booking))
}
