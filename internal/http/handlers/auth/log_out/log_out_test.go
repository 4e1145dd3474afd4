package logout

import (
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	logout "digitalmenu/internal/core/services/log_out"
	"digitalmenu/internal/http/handlers/auth"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogOut(t *testing.T) {
	cases := []struct {
		id            string
		token         string
		err           error
		expectedInput []logout.Input
	}{
		{id: "with token", token: "test-token", expectedInput: []logout.Input{{Token: user.SessionToken("test-token")}}},
		{id: "without token"},
		{id: "storage error", token: "test-token", err: errors.New("boom"), expectedInput: []logout.Input{{Token: "test-token"}}},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fake := services.NewFakeService[logout.Input, logout.Result](logout.Result{}, testcase.err)
			r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			if testcase.token != "" {
				r.AddCookie(&http.Cookie{Name: auth.SESSION_COOKIE_NAME, Value: testcase.token})
			}
			rw := httptest.NewRecorder()
			New(fake, auth.NewSessionCookie(false, time.Hour)).ServeHTTP(rw, r)

			require.Equal(t, http.StatusNoContent, rw.Code)
			require.Equal(t, testcase.expectedInput, fake.Inputs)
			cookies := rw.Result().Cookies()
			require.Len(t, cookies, 1)
			require.Equal(t, "", cookies[0].Value)
			require.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
