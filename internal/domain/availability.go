package domain

import "time"

// Availability окно, опубликованное преподавателем на конкретную дату
type Availability struct {
	ID              string
	TeacherID       string
	Subject         string
	TargetDate      time.Time // полночь даты занятия
	WindowStart     time.Time
	WindowEnd       time.Time
	CapacityPerSlot int
	CreatedAt       time.Time
}

// Contains проверяет попадание t в полуинтервал [WindowStart, WindowEnd)
func (a *Availability) Contains(t time.Time) bool {
	return !t.Before(a.WindowStart) && t.Before(a.WindowEnd)
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
func (a *Availability) Overlaps(start, end time.Time) bool {
	return start.Before(a.WindowEnd) && a.WindowStart.Before(end)
}

// Capacity вместимость одного слота окна
func (a *Availability) Capacity() int {
	if a.CapacityPerSlot <= 0 {
		return DefaultCapacityPerSlot
	}
	return a.CapacityPerSlot
}
