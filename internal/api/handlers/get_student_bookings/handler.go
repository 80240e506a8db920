package get_student_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*handlers.BookingResponse `json:"bookings"`
	Total    int                         `json:"total"`
}

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

// Handle GET /api/v1/students/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.service.GetStudentBookings(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("GET /students/bookings - Failed to get bookings: student_id=%s, error=%v", identity.UserID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	resp := &BookingListResponse{
		Bookings: make([]*handlers.BookingResponse, 0, len(result.Bookings)),
		Total:    result.Total,
	}
	for _, b := range result.Bookings {
		resp.Bookings = append(resp.Bookings, handlers.FromServiceBooking(b))
	}

	h.logger.Info("GET /students/bookings - Found %d bookings: student_id=%s", result.Total, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
