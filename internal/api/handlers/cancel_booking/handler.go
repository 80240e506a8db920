package cancel_booking

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

// Handle DELETE /api/v1/students/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Cancel(r.Context(), bookingID, identity.UserID); err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("DELETE /students/bookings/{id} - Failed to cancel: booking_id=%s, error=%v", bookingID, err)
		} else {
			h.logger.Warn("DELETE /students/bookings/{id} - Rejected: booking_id=%s, student_id=%s, status=%d",
				bookingID, identity.UserID, status)
		}
		return
	}

	h.logger.Info("DELETE /students/bookings/{id} - Booking cancelled: booking_id=%s, student_id=%s",
		bookingID, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
