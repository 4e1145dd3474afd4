package me

import (
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"digitalmenu/internal/core/services/auth"
	service "digitalmenu/internal/core/services/get_user_by_session_token"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	owner := user.User{ID: 1, Email: c.Email("owner@example.com"), Name: "Jane", Country: "Portugal"}
	cases := []struct {
		id     string
		token  user.SessionToken
		err    error
		status int
		body   string
	}{
		{
			id:     "authenticated",
			token:  "test-token",
			status: http.StatusOK,
			body:   `{"user":{"id":1,"email":"owner@example.com","name":"Jane","country":"Portugal"}}`,
		},
		{id: "no token", status: http.StatusOK, body: `{"user":null}`},
		{id: "unknown token", token: "test-token", err: user.ErrUserDoesNotExist, status: http.StatusOK, body: `{"user":null}`},
		{id: "storage error", token: "test-token", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fake := services.NewFakeService[service.Input, service.Result](service.Result{User: owner}, testcase.err)
			r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if testcase.token != "" {
				r = r.WithContext(auth.WithToken(r.Context(), testcase.token))
			}
			rw := httptest.NewRecorder()
			New(fake).ServeHTTP(rw, r)

			require.Equal(t, testcase.status, rw.Code)
			if testcase.body != "" {
				require.JSONEq(t, testcase.body, rw.Body.String())
			}
		})
	}
}
