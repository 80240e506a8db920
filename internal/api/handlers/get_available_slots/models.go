package get_available_slots

import (
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClassBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string            `json:"date"`
	Teachers []TeacherResponse `json:"teachers"`
}

type TeacherResponse struct {
	TeacherID   string           `json:"teacherId"`
	TeacherName string           `json:"teacherName,omitempty"`
	Windows     []WindowResponse `json:"windows"`
}

type WindowResponse struct {
	AvailabilityID  string         `json:"availabilityId"`
	Subject         string         `json:"subject"`
	StartTime       string         `json:"startTime"`
	EndTime         string         `json:"endTime"`
	CapacityPerSlot int            `json:"capacityPerSlot"`
	Slots           []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Teachers: make([]TeacherResponse, 0, len(resp.Teachers)),
	}

	for _, t := range resp.Teachers {
		teacher := TeacherResponse{
			TeacherID:   t.TeacherID,
			TeacherName: t.TeacherName,
			Windows:     make([]WindowResponse, 0, len(t.Windows)),
		}
		for _, w := range t.Windows {
			window := WindowResponse{
				AvailabilityID:  w.AvailabilityID,
				Subject:         w.Subject,
				StartTime:       w.WindowStart.Format(domain.TimeFormat),
				EndTime:         types.FormatEnd(w.WindowEnd, resp.Date),
				CapacityPerSlot: w.CapacityPerSlot,
				Slots:           make([]SlotResponse, 0, len(w.Slots)),
			}
			for _, s := range w.Slots {
				window.Slots = append(window.Slots, SlotResponse{
					StartTime: s.StartTime.Format(domain.TimeFormat),
					EndTime:   types.FormatEnd(s.EndTime, resp.Date),
					Capacity:  s.Capacity,
					Remaining: s.Remaining,
				})
			}
			teacher.Windows = append(teacher.Windows, window)
		}
		out.Teachers = append(out.Teachers, teacher)
	}
	return out
}
