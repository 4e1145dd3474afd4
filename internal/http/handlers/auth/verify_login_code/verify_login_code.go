package verifylogincode

import (
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	ratelimiter "digitalmenu/internal/core/domain/rate_limiter"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	service "digitalmenu/internal/core/services/verify_login_code"
	"digitalmenu/internal/http/handlers/auth"
	"digitalmenu/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
	cookie  *auth.SessionCookie
}

func New(
	service services.Service[service.Input, service.Result],
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

type Input struct {
	Email   string  `json:"email"`
	Code    string  `json:"code"`
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Code, validation.Required, validation.Length(0, 32)),
		validation.Field(&i.Name, validation.Length(0, 512)),
		validation.Field(&i.Country, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	input.Email = string(c.NewEmail(input.Email))
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		Email:   c.NewEmail(input.Email),
		Code:    input.Code,
		Name:    optionalString(input.Name),
		Country: optionalString(input.Country),
	})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw, err)
		case errors.Is(err, user.ErrLoginCodeMalformed):
			response.RenderError(rw, "Invalid verification code", http.StatusBadRequest)
		case errors.Is(err, user.ErrLoginCodeInvalid):
			response.RenderError(rw, "Code is invalid or has expired", http.StatusBadRequest)
		case errors.Is(err, user.ErrProfileRequired):
			response.RenderError(rw, "Please provide the required details", http.StatusBadRequest)
		case errors.Is(err, user.ErrInvalidProfile):
			response.RenderError(rw, "Name and country must be between 2 and 120 characters", http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	h.cookie.Set(rw, result.Token)
	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}

func optionalString(value *string) c.Optional[string] {
	if value == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*value, true)
}
