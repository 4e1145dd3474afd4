package getmenu

import (
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/services"
	service "digitalmenu/internal/core/services/get_menu"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newRouter(handler http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/menu/p/{"+PUBLIC_ID_PARAM+"}", handler)
	router.Method(http.MethodGet, "/menu/{"+SLUG_PARAM+"}", handler)
	return router
}

func TestBySlug(t *testing.T) {
	fake := services.NewFakeService[service.Input, service.Result](
		service.Result{Menu: restaurant.Menu{
			Restaurant: restaurant.Restaurant{ID: 1, Name: "Bistro", Slug: "bistro"},
			Categories: []restaurant.MenuCategory{},
		}},
		nil,
	)
	rw := httptest.NewRecorder()
	newRouter(New(fake)).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/menu/bistro", nil))

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, []service.Input{{Slug: "bistro"}}, fake.Inputs)
	require.Contains(t, rw.Body.String(), `"categories":[]`)
}

func TestByPublicID(t *testing.T) {
	fake := services.NewFakeService[service.Input, service.Result](service.Result{}, nil)
	rw := httptest.NewRecorder()
	newRouter(New(fake)).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/menu/p/abc-123", nil))

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, []service.Input{{PublicID: restaurant.PublicID("abc-123")}}, fake.Inputs)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "not found", err: restaurant.ErrRestaurantDoesNotExist, status: http.StatusNotFound},
		{id: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			fake := services.NewFakeService[service.Input, service.Result](service.Result{}, testcase.err)
			rw := httptest.NewRecorder()
			newRouter(New(fake)).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/menu/missing", nil))

			require.Equal(t, testcase.status, rw.Code)
		})
	}
}
