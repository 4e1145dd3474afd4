package cleanupexpired

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"time"
)

type Input struct{}

type Result struct {
	SessionsDeleted int64
	CodesDeleted    int64
}

type service struct {
	log                        logging.Logger
	sessionRepository          user.SessionRepository
	verificationCodeRepository user.VerificationCodeRepository
	now                        func() time.Time
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
	verificationCodeRepository user.VerificationCodeRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if verificationCodeRepository == nil {
		panic(e.NewNilArgumentError("verificationCodeRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                        log,
		sessionRepository:          sessionRepository,
		verificationCodeRepository: verificationCodeRepository,
		now:                        now,
	}
}

// Run deletes expired sessions and verification codes that expired or
// were consumed.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()

	result.SessionsDeleted, err = s.sessionRepository.DeleteExpired(ctx, now)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not delete expired sessions.", logging.Entry("err", err))
		return result, err
	}

	result.CodesDeleted, err = s.verificationCodeRepository.DeleteExpired(ctx, now)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not delete expired verification codes.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(
		ctx,
		"Expired credentials deleted.",
		logging.Entry("sessions", result.SessionsDeleted),
		logging.Entry("codes", result.CodesDeleted),
	)
	return result, nil
}
