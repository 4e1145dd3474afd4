package response

import (
	ratelimiter "digitalmenu/internal/core/domain/rate_limiter"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderUnauthorized(rw http.ResponseWriter) {
	RenderError(rw, "invalid authentication token", http.StatusUnauthorized)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

// RenderRateLimitExceeded sets Retry-After when err carries the remaining window.
func RenderRateLimitExceeded(rw http.ResponseWriter, err error) {
	var limitErr *ratelimiter.RateLimitExceededError
	if errors.As(err, &limitErr) {
		rw.Header().Set("Retry-After", strconv.Itoa(limitErr.RetryAfterSeconds()))
	}
	RenderError(rw, "too many requests, please try again later", http.StatusTooManyRequests)
}

func RenderNoContent(rw http.ResponseWriter) {
	rw.WriteHeader(http.StatusNoContent)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
