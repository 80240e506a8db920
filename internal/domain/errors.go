package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок ядра бронирования. HTTP слой сопоставляет их со статусами
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoAvailability   = errors.New("no availability for the date")
	ErrOutOfRange       = errors.New("time is not within any available window")
	ErrSlotFull         = errors.New("slot is full")
	ErrDuplicateBooking = errors.New("student already has a booking for the date")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrOverlap          = errors.New("availability window overlaps an existing one")
	ErrAlreadyExists    = errors.New("already exists")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// SlotFullError сообщает вместимость заполненного слота
type SlotFullError struct {
	Capacity int
}

func (e *SlotFullError) Error() string {
	return fmt.Sprintf("%s: capacity %d", ErrSlotFull, e.Capacity)
}

// Is позволяет errors.Is(err, ErrSlotFull)
func (e *SlotFullError) Is(target error) bool {
	return target == ErrSlotFull
}

// NewSlotFullError ошибка заполненного слота с вместимостью capacity
func NewSlotFullError(capacity int) error {
	return &SlotFullError{Capacity: capacity}
}

var coreErrors = []error{
	ErrInvalidInput,
	ErrNoAvailability,
	ErrOutOfRange,
	ErrSlotFull,
	ErrDuplicateBooking,
	ErrNotFound,
	ErrForbidden,
	ErrOverlap,
	ErrAlreadyExists,
	ErrStoreUnavailable,
}

// IsCoreError проверяет, что ошибка уже приведена к одному из видов выше
func IsCoreError(err error) bool {
	for _, target := range coreErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
