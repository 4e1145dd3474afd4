package email

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// FallbackSender tries the primary sender and falls back to the
// secondary one when the primary is not configured or fails.
type FallbackSender struct {
	log        logging.Logger
	primary    user.LoginCodeSender
	secondary  user.LoginCodeSender
	deliveries *prometheus.CounterVec
}

func NewFallbackSender(
	log logging.Logger,
	primary user.LoginCodeSender,
	secondary user.LoginCodeSender,
	deliveries *prometheus.CounterVec,
) *FallbackSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if secondary == nil {
		panic(e.NewNilArgumentError("secondary"))
	}
	if deliveries == nil {
		panic(e.NewNilArgumentError("deliveries"))
	}
	return &FallbackSender{log: log, primary: primary, secondary: secondary, deliveries: deliveries}
}

func (s *FallbackSender) SendLoginCode(
	ctx context.Context,
	email c.Email,
	code user.LoginCode,
) (d user.LoginCodeDelivery, err error) {
	if s.primary != nil {
		d, err = s.primary.SendLoginCode(ctx, email, code)
		if errors.Is(err, context.Canceled) {
			return d, err
		}
		if err == nil {
			s.deliveries.WithLabelValues(string(d.Channel)).Inc()
			return d, nil
		}
		s.log.Error(
			ctx,
			"Could not send login code email, falling back.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
	}

	d, err = s.secondary.SendLoginCode(ctx, email, code)
	if err != nil {
		return d, err
	}
	s.deliveries.WithLabelValues(string(d.Channel)).Inc()
	return d, nil
}

// NewDeliveryCounter registers the counter of login codes by channel.
func NewDeliveryCounter(registerer prometheus.Registerer) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "digitalmenu",
			Subsystem: "auth",
			Name:      "login_codes_total",
			Help:      "Login codes delivered, by channel.",
		},
		[]string{"channel"},
	)
	registerer.MustRegister(counter)
	return counter
}
