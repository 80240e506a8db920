package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/config"
)

func TestRedisLocker(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, Ping(ctx, client))
	locker := NewRedisLocker(client, "classes:")

	release, ok, err := locker.TryLock(ctx, "sweep:2026-10-15", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.Exists("classes:sweep:2026-10-15"))

	_, ok, err = locker.TryLock(ctx, "sweep:2026-10-15", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	require.NoError(t, release(ctx))
	assert.False(t, s.Exists("classes:sweep:2026-10-15"))

	_, ok, err = locker.TryLock(ctx, "sweep:2026-10-15", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLockerReleaseKeepsForeignLock(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer client.Close()

	ctx := context.Background()
	locker := NewRedisLocker(client, "")

	release, ok, err := locker.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// TTL истек, блокировку взял другой владелец
	s.FastForward(2 * time.Second)
	_, ok, err = locker.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, release(ctx))
	assert.True(t, s.Exists("k"))
}

func TestRedisLockerUnavailable(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	client := NewRedisClient(config.RedisConfig{Address: s.Addr()})
	defer client.Close()
	s.Close()

	_, ok, err := NewRedisLocker(client, "").TryLock(context.Background(), "k", time.Minute)
	assert.ErrorIs(t, err, ErrLock)
	assert.False(t, ok)
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	locker := NewLocalLocker()
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	locker.now = func() time.Time { return now }

	release, ok, err := locker.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
	assert.False(t, ok)

	require.NoError(t, release(ctx))
	_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	stale := release
	_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
	assert.True(t, ok, "expired lock can be taken over")
	require.NoError(t, stale(ctx))
	_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
	assert.False(t, ok, "stale release must not drop the new owner")
}
