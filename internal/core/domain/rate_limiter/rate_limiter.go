package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimitExceededError is returned when a key used up its window.
// It matches ErrRateLimitExceeded with errors.Is.
type RateLimitExceededError struct {
	Key        string
	RetryAfter time.Duration
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %s", e.Key, e.RetryAfter)
}

func (e *RateLimitExceededError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}

// RetryAfterSeconds rounds the remaining window up to whole seconds,
// never less than one.
func (e *RateLimitExceededError) RetryAfterSeconds() int {
	seconds := int(math.Ceil(e.RetryAfter.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

// Interval is the length of a fixed window.
type Interval time.Duration

const (
	Minute = Interval(time.Minute)
	Hour   = Interval(time.Hour)
)

func Every(d time.Duration) Interval {
	return Interval(d)
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed  bool
	RetryAfter time.Duration
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed(retryAfter time.Duration) Result {
	if retryAfter < 0 {
		retryAfter = 0
	}
	return Result{IsAllowed: false, RetryAfter: retryAfter}
}

type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
