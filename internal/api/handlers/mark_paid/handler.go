package mark_paid

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
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

// Handle POST /api/v1/payments/bookings/{bookingId}
// Вызывается платежным вебхуком, аутентификация на стороне шлюза
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.MarkPaid(r.Context(), bookingID)
	if err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /payments/bookings/{id} - Failed to mark paid: booking_id=%s, error=%v", bookingID, err)
		} else {
			h.logger.Warn("POST /payments/bookings/{id} - Rejected: booking_id=%s, status=%d", bookingID, status)
		}
		return
	}

	h.logger.Info("POST /payments/bookings/{id} - Booking paid: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceBooking(result))
}
