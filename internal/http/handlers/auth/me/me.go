package me

import (
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"digitalmenu/internal/core/services/auth"
	service "digitalmenu/internal/core/services/get_user_by_session_token"
	"digitalmenu/internal/http/handlers/response"
	"errors"
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
	User *response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		response.Render(rw, Result{}, http.StatusOK)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.Render(rw, Result{}, http.StatusOK)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: &u}, http.StatusOK)
}
