package book_slot

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/students/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))
	if err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /students/bookings - Failed to book: student_id=%s, teacher_id=%s, error=%v",
				identity.UserID, req.TeacherID, err)
		} else {
			h.logger.Warn("POST /students/bookings - Rejected: student_id=%s, teacher_id=%s, start=%s, status=%d, error=%v",
				identity.UserID, req.TeacherID, req.StartTime, status, err)
		}
		return
	}

	h.logger.Info("POST /students/bookings - Booking created: booking_id=%s, student_id=%s, teacher_id=%s",
		result.ID, identity.UserID, req.TeacherID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
