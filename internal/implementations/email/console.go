package email

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
)

// ConsoleSender writes login codes to the log. It is used when no email
// provider is configured or the provider failed.
type ConsoleSender struct {
	log logging.Logger
}

func NewConsoleSender(log logging.Logger) *ConsoleSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &ConsoleSender{log: log}
}

func (s *ConsoleSender) SendLoginCode(
	ctx context.Context,
	email c.Email,
	code user.LoginCode,
) (user.LoginCodeDelivery, error) {
	s.log.Warning(
		ctx,
		"Email delivery is not available, login code written to the log.",
		logging.Entry("email", email),
		logging.Entry("code", string(code)),
	)
	return user.LoginCodeDelivery{
		Channel:      user.DeliveryChannelConsole,
		FallbackCode: c.NewOptional(code, true),
	}, nil
}
