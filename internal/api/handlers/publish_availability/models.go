package publish_availability

import (
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	publishAvailability "github.com/m04kA/SMC-ClassBookingService/internal/usecase/publish_availability"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

// PublishAvailabilityRequest HTTP request model
type PublishAvailabilityRequest struct {
	Subject         string `json:"subject"`
	Date            string `json:"date,omitempty"` // "2025-10-15", по умолчанию завтра
	StartTime       string `json:"startTime"`      // "10:00"
	EndTime         string `json:"endTime"`        // "13:00"
	CapacityPerSlot int    `json:"capacityPerSlot,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ID              string `json:"id"`
	TeacherID       string `json:"teacherId"`
	Subject         string `json:"subject"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CapacityPerSlot int    `json:"capacityPerSlot"`
	SlotsCount      int    `json:"slotsCount"`
}

func (r *PublishAvailabilityRequest) ToUseCaseRequest(teacherID string) *publishAvailability.Request {
	return &publishAvailability.Request{
		TeacherID:       teacherID,
		Subject:         r.Subject,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		CapacityPerSlot: r.CapacityPerSlot,
	}
}

func FromUseCaseResponse(resp *publishAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:              resp.ID,
		TeacherID:       resp.TeacherID,
		Subject:         resp.Subject,
		Date:            resp.TargetDate.Format(domain.DateFormat),
		StartTime:       resp.WindowStart.Format(domain.TimeFormat),
		EndTime:         types.FormatEnd(resp.WindowEnd, resp.TargetDate),
		CapacityPerSlot: resp.CapacityPerSlot,
		SlotsCount:      resp.SlotsCount,
	}
}
