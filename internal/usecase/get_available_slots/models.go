package get_available_slots

import "time"

// Request фильтры выдачи
type Request struct {
	TeacherID *string // только окна этого преподавателя
	OnlyFree  bool    // скрыть заполненные слоты
}

// Response слоты на завтра по преподавателям
type Response struct {
	Date     time.Time
	Teachers []TeacherSlots
}

// TeacherSlots окна одного преподавателя в порядке публикации
type TeacherSlots struct {
	TeacherID   string
	TeacherName string // пусто, если профиль не найден
	Windows     []Window
}

type Window struct {
	AvailabilityID  string
	Subject         string
	WindowStart     time.Time
	WindowEnd       time.Time
	CapacityPerSlot int
	Slots           []Slot
}

type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	Capacity  int
	Remaining int
}
