package getuserbysessiontoken

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"time"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
	tokenHasher       user.TokenHasher
	now               func() time.Time
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
	tokenHasher user.TokenHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if tokenHasher == nil {
		panic(e.NewNilArgumentError("tokenHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
		tokenHasher:       tokenHasher,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Token == "" {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.sessionRepository.GetUserByToken(ctx, s.tokenHasher.HashSessionToken(input.Token), s.now())
	if err != nil && !errors.Is(err, user.ErrUserDoesNotExist) && !errors.Is(err, context.Canceled) {
		s.log.Error(ctx, "Could not get user by session token.", logging.Entry("err", err))
	}
	return Result{User: u}, err
}
