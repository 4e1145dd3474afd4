package middleware

import (
	"digitalmenu/internal/core/domain/logging"
	ratelimiter "digitalmenu/internal/core/domain/rate_limiter"
	"digitalmenu/internal/http/handlers/response"
	"net/http"
	"strings"
)

const UNKNOWN_CLIENT_IP = "unknown"

// ClientIP takes the first X-Forwarded-For entry, then X-Real-IP.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UNKNOWN_CLIENT_IP
}

// LimitByClientIP rejects requests once the client IP used up limit
// within the window. scope separates the counters of different routes.
func LimitByClientIP(
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	scope string,
	limit ratelimiter.Limit,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + "::ip::" + ClientIP(r)
			rate := rateLimiter.CheckLimit(r.Context(), key, limit)
			if !rate.IsAllowed {
				log.Warning(
					r.Context(),
					"Rate limit exceeded.",
					logging.Entry("key", key),
					logging.Entry("retryAfter", rate.RetryAfter),
				)
				response.RenderRateLimitExceeded(w, &ratelimiter.RateLimitExceededError{
					Key:        key,
					RetryAfter: rate.RetryAfter,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
