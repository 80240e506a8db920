package book_slot

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	bookSlot "github.com/m04kA/SMC-ClassBookingService/internal/usecase/book_slot"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	TeacherID string `json:"teacherId"`
	StartTime string `json:"startTime"` // "10:00", дата всегда завтра
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	TeacherID   string `json:"teacherId"`
	Subject     string `json:"subject"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	BookedAt    string `json:"bookedAt"`
	FeesPaid    bool   `json:"feesPaid"`
}

func (r *BookSlotRequest) ToUseCaseRequest(studentID string) *bookSlot.Request {
	return &bookSlot.Request{
		StudentID: studentID,
		TeacherID: r.TeacherID,
		StartTime: r.StartTime,
	}
}

func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		StudentID:   resp.StudentID,
		TeacherID:   resp.TeacherID,
		Subject:     resp.Subject,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.Format(domain.TimeFormat),
		EndTime:     types.FormatEnd(resp.EndTime, resp.BookingDate),
		BookedAt:    resp.BookedAt.Format(time.RFC3339),
		FeesPaid:    resp.FeesPaid,
	}
}
