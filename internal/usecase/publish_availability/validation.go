package publish_availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

type window struct {
	date     time.Time
	start    time.Time
	end      time.Time
	capacity int
	subject  string
}

// validateRequest собирает окно на целевой дате. Разрешена только публикация на завтра
func validateRequest(req *Request, tomorrow time.Time) (*window, error) {
	if strings.TrimSpace(req.TeacherID) == "" {
		return nil, fmt.Errorf("%w: teacher id is required", domain.ErrInvalidInput)
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	if len(subject) > domain.MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject is longer than %d", domain.ErrInvalidInput, domain.MaxSubjectLength)
	}

	capacity := req.CapacityPerSlot
	if capacity == 0 {
		capacity = domain.DefaultCapacityPerSlot
	}
	if capacity < 0 || capacity > domain.MaxCapacityPerSlot {
		return nil, fmt.Errorf("%w: capacity per slot must be between 1 and %d", domain.ErrInvalidInput, domain.MaxCapacityPerSlot)
	}

	date := tomorrow
	if req.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.Date, tomorrow.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		if !parsed.Equal(tomorrow) {
			return nil, fmt.Errorf("%w: availability can be published only for %s", domain.ErrInvalidInput,
				tomorrow.Format(domain.DateFormat))
		}
		date = parsed
	}

	start, err := compose(req.StartTime, date, "start")
	if err != nil {
		return nil, err
	}
	end, err := compose(req.EndTime, date, "end")
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start time must be before end time", domain.ErrInvalidInput)
	}

	return &window{date: date, start: start, end: end, capacity: capacity, subject: subject}, nil
}

// compose собирает границу окна на дате. Конец окна может быть "24:00", то есть полночь следующего дня
func compose(value string, date time.Time, field string) (time.Time, error) {
	parse := types.NewTimeStringFromString
	if field == "end" {
		parse = types.NewEndTimeStringFromString
	}

	ts, err := parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s time: %v", domain.ErrInvalidInput, field, err)
	}
	t, err := ts.On(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s time: %v", domain.ErrInvalidInput, field, err)
	}
	return t, nil
}
