package models

import (
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// BookingResponse бронирование для ответа API
type BookingResponse struct {
	ID               string
	StudentID        string
	TeacherID        string
	Subject          string
	BookingDate      time.Time
	StartTime        time.Time
	EndTime          time.Time
	BookedAt         time.Time
	FeesPaid         bool
	PaymentTimestamp *time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// StudentContact контакты записавшегося студента
type StudentContact struct {
	ID       string
	FullName string
	Email    string
	Phone    *string
}

// TeacherReservation бронирование вместе с данными студента
type TeacherReservation struct {
	Booking *BookingResponse
	Student StudentContact
}

// TeacherReservationsResponse записи к преподавателю на дату
type TeacherReservationsResponse struct {
	Date         time.Time
	Reservations []*TeacherReservation
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:               b.ID,
		StudentID:        b.StudentID,
		TeacherID:        b.TeacherID,
		Subject:          b.Subject,
		BookingDate:      b.BookingDate,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		BookedAt:         b.BookedAt,
		FeesPaid:         b.FeesPaid,
		PaymentTimestamp: b.PaymentTimestamp,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(list []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]*BookingResponse, 0, len(list)), Total: len(list)}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
	}
	return resp
}

// FromDomainUser контакты пользователя
func FromDomainUser(u *domain.User) StudentContact {
	return StudentContact{
		ID:       u.ID,
		FullName: u.FullName(),
		Email:    u.Email,
		Phone:    u.Phone,
	}
}
