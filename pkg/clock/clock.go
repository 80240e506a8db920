package clock

import (
	"sync"
	"time"
)

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Real реальные часы в заданной таймзоне (nil - локальная)
type Real struct {
	Location *time.Location
}

// Now возвращает текущее время
func (c Real) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Fixed часы с управляемым временем для тестов
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFixed создает часы, остановленные на now
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now возвращает зафиксированное время
func (c *Fixed) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set переставляет часы
func (c *Fixed) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance сдвигает часы на d
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Midnight обнуляет время, оставляя дату и таймзону
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Tomorrow полночь следующего календарного дня относительно now
func Tomorrow(now time.Time) time.Time {
	return Midnight(now).AddDate(0, 0, 1)
}

// SameDay проверяет, что две метки относятся к одной дате
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
