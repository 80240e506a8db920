package handlers

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ClassBookingService/pkg/types"
)

// BookingResponse бронирование в HTTP ответах
type BookingResponse struct {
	ID               string  `json:"id"`
	StudentID        string  `json:"studentId"`
	TeacherID        string  `json:"teacherId"`
	Subject          string  `json:"subject"`
	BookingDate      string  `json:"bookingDate"` // "2025-10-15"
	StartTime        string  `json:"startTime"`   // "10:00"
	EndTime          string  `json:"endTime"`
	BookedAt         string  `json:"bookedAt"`
	FeesPaid         bool    `json:"feesPaid"`
	PaymentTimestamp *string `json:"paymentTimestamp,omitempty"`
}

// FromServiceBooking конвертирует модель сервиса бронирований
func FromServiceBooking(b *models.BookingResponse) *BookingResponse {
	resp := &BookingResponse{
		ID:          b.ID,
		StudentID:   b.StudentID,
		TeacherID:   b.TeacherID,
		Subject:     b.Subject,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.Format(domain.TimeFormat),
		EndTime:     types.FormatEnd(b.EndTime, b.BookingDate),
		BookedAt:    b.BookedAt.Format(time.RFC3339),
		FeesPaid:    b.FeesPaid,
	}
	if b.PaymentTimestamp != nil {
		ts := b.PaymentTimestamp.Format(time.RFC3339)
		resp.PaymentTimestamp = &ts
	}
	return resp
}
