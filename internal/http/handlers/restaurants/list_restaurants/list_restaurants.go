package listrestaurants

import (
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/services"
	service "digitalmenu/internal/core/services/list_restaurants"
	"digitalmenu/internal/http/handlers/response"
	"net/http"
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
	Restaurants []response.Restaurant `json:"restaurants"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Restaurants: response.FromDomainRestaurants(result.Restaurants)}, http.StatusOK)
}
