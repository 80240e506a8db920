package domain

import "time"

// Параметры сетки слотов
const (
	SlotDuration           = time.Hour
	DefaultCapacityPerSlot = 1
	MaxCapacityPerSlot     = 100
	MaxSubjectLength       = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Источники создания бронирования (метка для метрик и логов)
const (
	SourceInteractive = "interactive"
	SourceSweeper     = "sweeper"
)
