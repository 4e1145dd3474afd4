package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type FakeRateLimiter struct {
	IsAllowed  bool
	RetryAfter time.Duration
	Keys       []string
	lock       sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed, RetryAfter: time.Minute}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.Keys = append(rl.Keys, key)
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowed(rl.RetryAfter)
}
