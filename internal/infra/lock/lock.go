// Package lock взаимоисключение прогонов автоназначения между процессами (redis) или внутри процесса
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrLock ошибка обращения к хранилищу блокировок
var ErrLock = errors.New("lock: backend error")

// Release снимает блокировку, если она всё ещё принадлежит владельцу
type Release func(ctx context.Context) error

// Locker неблокирующий захват именованной блокировки с TTL
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (Release, bool, error)
}
