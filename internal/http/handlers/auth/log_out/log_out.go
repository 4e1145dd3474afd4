package logout

import (
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/services"
	logout "digitalmenu/internal/core/services/log_out"
	"digitalmenu/internal/http/handlers/auth"
	"digitalmenu/internal/http/handlers/response"
	"net/http"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
	cookie  *auth.SessionCookie
}

func New(
	service services.Service[logout.Input, logout.Result],
	cookie *auth.SessionCookie,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if cookie == nil {
		panic(e.NewNilArgumentError("cookie"))
	}
	return &Handler{service: service, cookie: cookie}
}

// ServeHTTP always clears the cookie and answers 204; revocation
// failures are logged by the service.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if token, ok := auth.ParseToken(r); ok {
		_, _ = h.service.Run(r.Context(), logout.Input{Token: token})
	}
	h.cookie.Clear(rw)
	response.RenderNoContent(rw)
}
