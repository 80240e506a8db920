package get_teacher_reservations

import (
	"net/http"

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

// Handle GET /api/v1/teachers/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	result, err := h.service.GetTeacherReservations(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("GET /teachers/reservations - Failed to get reservations: teacher_id=%s, error=%v", identity.UserID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /teachers/reservations - Found %d reservations: teacher_id=%s", len(result.Reservations), identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
