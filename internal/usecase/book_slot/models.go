package book_slot

import "time"

// Request запрос студента на запись к преподавателю на завтра
type Request struct {
	StudentID string
	TeacherID string
	StartTime string // HH:MM
}

// Response созданное бронирование
type Response struct {
	ID          string
	StudentID   string
	TeacherID   string
	Subject     string
	BookingDate time.Time
	StartTime   time.Time
	EndTime     time.Time
	BookedAt    time.Time
	FeesPaid    bool
}
