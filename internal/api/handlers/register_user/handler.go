package register_user

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase RegisterUserUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/internal/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		status := handlers.RespondDomainError(w, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /internal/users - Failed to register: email=%s, error=%v", req.Email, err)
		} else {
			h.logger.Warn("POST /internal/users - Rejected: email=%s, status=%d, error=%v", req.Email, status, err)
		}
		return
	}

	h.logger.Info("POST /internal/users - Registered: user_id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
