package book_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

// validateRequest проверяет идентификаторы и разбирает время начала
func validateRequest(req *Request) (types.TimeString, error) {
	if strings.TrimSpace(req.StudentID) == "" {
		return "", fmt.Errorf("%w: student id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.TeacherID) == "" {
		return "", fmt.Errorf("%w: teacher id is required", domain.ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: start time: %v", domain.ErrInvalidInput, err)
	}
	return start, nil
}
