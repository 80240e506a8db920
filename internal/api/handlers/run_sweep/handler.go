package run_sweep

import (
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	autoAssign "github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	TargetDate    string   `json:"targetDate"`
	Assigned      int      `json:"assigned"`
	Unassigned    []string `json:"unassigned"`
	AlreadyBooked int      `json:"alreadyBooked"`
	FreeSeats     int      `json:"freeSeats"`
	Skipped       bool     `json:"skipped"`
}

type Handler struct {
	useCase AutoAssignUseCase
	logger  Logger
}

func NewHandler(useCase AutoAssignUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/internal/sweeps
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /internal/sweeps - Sweep failed: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	status := http.StatusOK
	if result.Skipped {
		status = http.StatusAccepted
	}

	h.logger.Info("POST /internal/sweeps - Sweep for %s: assigned=%d, skipped=%t",
		result.TargetDate.Format(domain.DateFormat), result.Assigned, result.Skipped)
	handlers.RespondJSON(w, status, FromResult(result))
}

func FromResult(r *autoAssign.Result) *SweepResponse {
	unassigned := r.Unassigned
	if unassigned == nil {
		unassigned = []string{}
	}
	return &SweepResponse{
		TargetDate:    r.TargetDate.Format(domain.DateFormat),
		Assigned:      r.Assigned,
		Unassigned:    unassigned,
		AlreadyBooked: r.AlreadyBooked,
		FreeSeats:     r.FreeSeats,
		Skipped:       r.Skipped,
	}
}
