package logout

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	Revoked int64
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
	tokenHasher       user.TokenHasher
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
	tokenHasher user.TokenHasher,
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
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
		tokenHasher:       tokenHasher,
	}
}

// Run revokes the session of the token. Unknown and empty tokens are
// not an error.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Token == "" {
		return result, nil
	}
	revoked, err := s.sessionRepository.Delete(ctx, s.tokenHasher.HashSessionToken(input.Token))
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not revoke session.", logging.Entry("err", err))
		return result, err
	}
	s.log.Info(ctx, "Session revoked.", logging.Entry("revoked", revoked))
	return Result{Revoked: revoked}, nil
}
