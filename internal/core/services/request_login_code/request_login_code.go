package requestlogincode

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	uow "digitalmenu/internal/core/domain/unit_of_work"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-login-code::" + string(i.Email)
}

type Result struct {
	Delivery user.LoginCodeDelivery
	// Code is exposed to the HTTP layer only in test mode.
	Code user.LoginCode
}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	loginCodeGenerator user.LoginCodeGenerator
	tokenHasher        user.TokenHasher
	loginCodeSender    user.LoginCodeSender
	codeTTL            time.Duration
	now                func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	loginCodeGenerator user.LoginCodeGenerator,
	tokenHasher user.TokenHasher,
	loginCodeSender user.LoginCodeSender,
	codeTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if loginCodeGenerator == nil {
		panic(e.NewNilArgumentError("loginCodeGenerator"))
	}
	if tokenHasher == nil {
		panic(e.NewNilArgumentError("tokenHasher"))
	}
	if loginCodeSender == nil {
		panic(e.NewNilArgumentError("loginCodeSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		loginCodeGenerator: loginCodeGenerator,
		tokenHasher:        tokenHasher,
		loginCodeSender:    loginCodeSender,
		codeTTL:            codeTTL,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	code, err := s.issueCode(ctx, input.Email)
	if err != nil {
		return result, err
	}

	delivery, err := s.loginCodeSender.SendLoginCode(ctx, input.Email, code)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send login code.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !delivery.IsDelivered() {
		s.log.Warning(
			ctx,
			"Login code was not emailed.",
			logging.Entry("email", input.Email),
			logging.Entry("channel", delivery.Channel),
		)
		return Result{Delivery: delivery, Code: code}, nil
	}

	s.log.Info(ctx, "Login code emailed.", logging.Entry("email", input.Email))
	return Result{Delivery: delivery, Code: code}, nil
}

func (s *service) issueCode(ctx context.Context, email c.Email) (code user.LoginCode, err error) {
	now := s.now()

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return code, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return code, err
	}
	defer uow.Rollback(ctx)

	if err := uow.VerificationCodes().DeleteStale(ctx, email, now); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(
				ctx,
				"Could not delete stale login codes.",
				logging.Entry("email", email),
				logging.Entry("err", err),
			)
		}
		return code, err
	}

	userID := c.Optional[user.ID]{}
	existing, err := uow.Users().GetByEmail(ctx, email)
	switch {
	case err == nil:
		userID = c.NewOptional(existing.ID, true)
	case errors.Is(err, user.ErrUserDoesNotExist):
	case errors.Is(err, context.Canceled):
		return code, err
	default:
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return code, err
	}

	code = s.loginCodeGenerator.GenerateLoginCode()
	_, err = uow.VerificationCodes().Create(ctx, user.CreateVerificationCodeInput{
		Email:     email,
		CodeHash:  s.tokenHasher.HashLoginCode(email, code),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL),
	})
	if errors.Is(err, context.Canceled) {
		return code, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create verification code.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return code, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return code, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return code, err
	}
	return code, nil
}
