package ratelimiter

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	ratelimiter "digitalmenu/internal/core/domain/rate_limiter"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const CLEANUP_INTERVAL = 5 * time.Minute

type window struct {
	count   uint16
	resetAt time.Time
}

// Memory keeps fixed windows in process memory. Windows are lost on
// restart and are not shared between instances.
type Memory struct {
	windows *gocache.Cache
	now     func() time.Time
	lock    sync.Mutex
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Memory{
		windows: gocache.New(gocache.NoExpiration, CLEANUP_INTERVAL),
		now:     now,
	}
}

func (m *Memory) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	m.lock.Lock()
	defer m.lock.Unlock()

	now := m.now()
	interval := limit.Interval.Duration()

	raw, ok := m.windows.Get(key)
	w, _ := raw.(*window)
	if !ok || w == nil || w.resetAt.Before(now) {
		w = &window{count: 1, resetAt: now.Add(interval)}
		m.windows.Set(key, w, interval)
		return ratelimiter.Allowed()
	}
	if w.count >= limit.Value {
		return ratelimiter.NotAllowed(w.resetAt.Sub(now))
	}
	w.count++
	return ratelimiter.Allowed()
}
