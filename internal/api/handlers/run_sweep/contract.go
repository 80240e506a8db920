package run_sweep

import (
	"context"

	autoAssign "github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
)

type AutoAssignUseCase interface {
	Execute(ctx context.Context) (*autoAssign.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
