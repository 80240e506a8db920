package publish_availability

import "time"

// Request публикация окна преподавателем
type Request struct {
	TeacherID       string
	Subject         string
	Date            string // YYYY-MM-DD, пусто - завтра
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	CapacityPerSlot int    // 0 - значение по умолчанию
}

// Response опубликованное окно
type Response struct {
	ID              string
	TeacherID       string
	Subject         string
	TargetDate      time.Time
	WindowStart     time.Time
	WindowEnd       time.Time
	CapacityPerSlot int
	SlotsCount      int
}
