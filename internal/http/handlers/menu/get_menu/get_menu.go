package getmenu

import (
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/services"
	service "digitalmenu/internal/core/services/get_menu"
	"digitalmenu/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	SLUG_PARAM      = "slug"
	PUBLIC_ID_PARAM = "publicID"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Menu response.Menu `json:"menu"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{
		Slug:     chi.URLParam(r, SLUG_PARAM),
		PublicID: restaurant.PublicID(chi.URLParam(r, PUBLIC_ID_PARAM)),
	}
	result, err := h.service.Run(r.Context(), input)
	if errors.Is(err, restaurant.ErrRestaurantDoesNotExist) {
		response.RenderError(rw, "restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	menu := response.Menu{}
	menu.FromDomainMenu(result.Menu)
	response.Render(rw, Result{Menu: menu}, http.StatusOK)
}
