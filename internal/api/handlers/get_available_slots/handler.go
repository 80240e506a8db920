package get_available_slots

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidOnlyFree = "параметр onlyFree должен быть true или false"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available?teacherId=...&onlyFree=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAvailableSlots.Request{}

	if teacherID := query.Get("teacherId"); teacherID != "" {
		req.TeacherID = &teacherID
	}

	if raw := query.Get("onlyFree"); raw != "" {
		onlyFree, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /slots/available - Invalid onlyFree: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidOnlyFree)
			return
		}
		req.OnlyFree = onlyFree
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /slots/available - Failed to get slots: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /slots/available - Found slots of %d teachers for %s", len(result.Teachers), result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
