package auth

import (
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services/auth"
	"net/http"
	"strings"
	"time"
)

const (
	AUTH_TOKEN_PREFIX   = "Bearer "
	AUTH_TOKEN_MAX_LEN  = 1024
	SESSION_COOKIE_NAME = "dm_session"
)

// ParseToken reads the session token from the session cookie and falls
// back to the bearer authorization header.
func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	if cookie, err := r.Cookie(SESSION_COOKIE_NAME); err == nil {
		if cookie.Value != "" && len(cookie.Value) <= AUTH_TOKEN_MAX_LEN {
			return user.SessionToken(cookie.Value), true
		}
	}

	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 || parts[0] != "" {
		return token, false
	}
	if parts[1] == "" || len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(parts[1]), true
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			r = r.WithContext(auth.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

type SessionCookie struct {
	Secure bool
	MaxAge time.Duration
}

func NewSessionCookie(secure bool, maxAge time.Duration) *SessionCookie {
	return &SessionCookie{Secure: secure, MaxAge: maxAge}
}

func (c *SessionCookie) Set(rw http.ResponseWriter, token user.SessionToken) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    string(token),
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *SessionCookie) Clear(rw http.ResponseWriter) {
	http.SetCookie(rw, &http.Cookie{
		Name:     SESSION_COOKIE_NAME,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
