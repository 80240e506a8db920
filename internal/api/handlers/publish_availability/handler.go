package publish_availability

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase PublishAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase PublishAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/teachers/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())

	var req PublishAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))
	if err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /teachers/availability - Failed to publish: teacher_id=%s, error=%v", identity.UserID, err)
		} else {
			h.logger.Warn("POST /teachers/availability - Rejected: teacher_id=%s, status=%d, error=%v", identity.UserID, status, err)
		}
		return
	}

	h.logger.Info("POST /teachers/availability - Published: availability_id=%s, teacher_id=%s, slots=%d",
		result.ID, identity.UserID, result.SlotsCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
