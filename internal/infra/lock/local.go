package lock

import (
	"context"
	"sync"
	"time"
)

type localEntry struct {
	token   uint64
	expires time.Time
}

// LocalLocker блокировка в памяти для единственного экземпляра сервиса
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]localEntry
	next    uint64
	now     func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		entries: make(map[string]localEntry),
		now:     time.Now,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (Release, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if e, ok := l.entries[key]; ok && now.Before(e.expires) {
		return nil, false, nil
	}

	l.next++
	token := l.next
	l.entries[key] = localEntry{token: token, expires: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if e, ok := l.entries[key]; ok && e.token == token {
			delete(l.entries, key)
		}
		return nil
	}
	return release, true, nil
}
