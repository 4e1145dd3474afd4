package updateprofile

import (
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	service "digitalmenu/internal/core/services/update_profile"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	updated := user.User{ID: 1, Email: c.Email("owner@example.com"), Name: "John", Country: "Spain"}
	cases := []struct {
		id     string
		body   string
		err    error
		status int
		runs   int
	}{
		{id: "success", body: `{"name": "John", "country": "Spain"}`, status: http.StatusOK, runs: 1},
		{id: "not json", body: `name=John`, status: http.StatusBadRequest},
		{id: "missing country", body: `{"name": "John"}`, status: http.StatusBadRequest},
		{
			id:     "unauthenticated",
			body:   `{"name": "John", "country": "Spain"}`,
			err:    user.ErrUserDoesNotExist,
			status: http.StatusUnauthorized,
			runs:   1,
		},
		{
			id:     "invalid profile",
			body:   `{"name": "J", "country": "Spain"}`,
			err:    user.ErrInvalidProfile,
			status: http.StatusBadRequest,
			runs:   1,
		},
		{
			id:     "internal",
			body:   `{"name": "John", "country": "Spain"}`,
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			runs:   1,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fake := services.NewFakeService[service.Input, service.Result](service.Result{User: updated}, testcase.err)
			r := httptest.NewRequest(http.MethodPatch, "/auth/me", strings.NewReader(testcase.body))
			rw := httptest.NewRecorder()
			New(fake).ServeHTTP(rw, r)

			require.Equal(t, testcase.status, rw.Code)
			require.Equal(t, testcase.runs, fake.RunCount())
			if testcase.status == http.StatusOK {
				require.JSONEq(
					t,
					`{"user":{"id":1,"email":"owner@example.com","name":"John","country":"Spain"}}`,
					rw.Body.String(),
				)
			}
		})
	}
}
