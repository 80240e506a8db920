package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// EndOfDay конец суток. Допустим только как правая граница интервала
const EndOfDay TimeString = "24:00"

// TimeString время суток в формате HH:MM
type TimeString string

// NewTimeStringFromString разбирает строку вида "H:MM" / "HH:MM" и нормализует её к "HH:MM".
// Часы и минуты только ASCII цифры, без знака и пробелов
func NewTimeStringFromString(s string) (TimeString, error) {
	return newTimeString(s, false)
}

// NewEndTimeStringFromString то же, что NewTimeStringFromString, но принимает и "24:00"
func NewEndTimeStringFromString(s string) (TimeString, error) {
	return newTimeString(s, true)
}

// On собирает метку времени на дату date (в её таймзоне).
// EndOfDay дает полночь следующего дня
func (t TimeString) On(date time.Time) (time.Time, error) {
	y, m, d := date.Date()
	if t == EndOfDay {
		return time.Date(y, m, d+1, 0, 0, 0, 0, date.Location()), nil
	}

	hour, minute, err := parse(string(t))
	if err != nil {
		return time.Time{}, err
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidTimeString, string(t))
	}
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), nil
}

// FormatEnd правая граница интервала на дате date в виде HH:MM.
// Полночь следующего дня выводится как "24:00"
func FormatEnd(end, date time.Time) string {
	y, m, d := date.Date()
	if end.Equal(time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())) {
		return string(EndOfDay)
	}
	return end.Format("15:04")
}

func (t TimeString) String() string {
	return string(t)
}

func newTimeString(s string, allowEndOfDay bool) (TimeString, error) {
	hour, minute, err := parse(s)
	if err != nil {
		return "", err
	}

	switch {
	case hour <= 23:
	case allowEndOfDay && hour == 24 && minute == 0:
		return EndOfDay, nil
	default:
		return "", fmt.Errorf("%w: bad hour in %q", ErrInvalidTimeString, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// parse проверяет только формат; диапазон часов на вызывающем
func parse(s string) (int, int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(h) < 1 || len(h) > 2 || !isDigits(h) {
		return 0, 0, fmt.Errorf("%w: bad hour in %q", ErrInvalidTimeString, s)
	}
	if len(m) != 2 || !isDigits(m) {
		return 0, 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidTimeString, s)
	}

	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidTimeString, s)
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
