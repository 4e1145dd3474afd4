package ratelimiter

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	ratelimiter "digitalmenu/internal/core/domain/rate_limiter"
	"errors"

	"github.com/go-redis/redis/v9"
)

const REDIS_KEY_PREFIX = "rate-limit::"

// Redis counts hits with INCR. The first hit of a window sets its expiry,
// so windows are shared by every instance using the same Redis.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k := REDIS_KEY_PREFIX + key
	interval := limit.Interval.Duration()

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.PTTL(ctx, k)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed(0)
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}

	retryAfter := ttl.Val()
	if retryAfter < 0 {
		if err := r.redisClient.PExpire(ctx, k, interval).Err(); err != nil {
			r.log.Error(ctx, "Could not set rate limit window expiry.", logging.Entry("err", err))
		}
		retryAfter = interval
	}
	if incr.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed(retryAfter)
	}
	return ratelimiter.Allowed()
}
