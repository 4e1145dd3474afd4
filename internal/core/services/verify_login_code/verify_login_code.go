package verifylogincode

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	uow "digitalmenu/internal/core/domain/unit_of_work"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"strings"
	"time"
)

type Input struct {
	Email   c.Email
	Code    string
	Name    c.Optional[string]
	Country c.Optional[string]
}

func (i Input) GetRateLimitKey() string {
	return "verify-login-code::" + string(i.Email)
}

type Result struct {
	User      user.User
	Token     user.SessionToken
	ExpiresAt time.Time
	IsNewUser bool
}

type service struct {
	log                   logging.Logger
	unitOfWork            uow.UnitOfWork
	tokenHasher           user.TokenHasher
	sessionTokenGenerator user.SessionTokenGenerator
	sanitizer             user.TextSanitizer
	sessionMaxAgeDays     int
	now                   func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	tokenHasher user.TokenHasher,
	sessionTokenGenerator user.SessionTokenGenerator,
	sanitizer user.TextSanitizer,
	sessionMaxAgeDays int,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if tokenHasher == nil {
		panic(e.NewNilArgumentError("tokenHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if sanitizer == nil {
		panic(e.NewNilArgumentError("sanitizer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		unitOfWork:            unitOfWork,
		tokenHasher:           tokenHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		sanitizer:             sanitizer,
		sessionMaxAgeDays:     sessionMaxAgeDays,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	code, err := user.ParseLoginCode(input.Code)
	if err != nil {
		return result, err
	}
	now := s.now()

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	verification, err := uow.VerificationCodes().GetActive(
		ctx,
		input.Email,
		s.tokenHasher.HashLoginCode(input.Email, code),
		now,
	)
	if errors.Is(err, user.ErrLoginCodeInvalid) {
		s.log.Info(ctx, "Login code is invalid or expired.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.logError(ctx, "Could not get verification code.", input, err)
		return result, err
	}

	u, isNew, err := s.upsertUser(ctx, uow, input, now)
	if err != nil {
		return result, err
	}

	err = uow.VerificationCodes().Consume(ctx, verification.ID, now)
	if errors.Is(err, user.ErrVerificationCodeConsumed) {
		s.log.Warning(
			ctx,
			"Verification code consumed concurrently.",
			logging.Entry("email", input.Email),
			logging.Entry("codeID", verification.ID),
		)
		return result, user.ErrLoginCodeInvalid
	}
	if err != nil {
		s.logError(ctx, "Could not consume verification code.", input, err)
		return result, err
	}

	token := s.sessionTokenGenerator.GenerateSessionToken()
	session, err := uow.Sessions().Create(ctx, user.CreateSessionInput{
		UserID:    u.ID,
		TokenHash: s.tokenHasher.HashSessionToken(token),
		CreatedAt: now,
		ExpiresAt: user.SessionExpiresAt(now, s.sessionMaxAgeDays),
	})
	if err != nil {
		s.logError(ctx, "Could not create session.", input, err)
		return result, err
	}

	err = uow.Commit(ctx)
	if err != nil {
		s.logError(ctx, "Could not commit unit of work.", input, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"User signed in.",
		logging.Entry("userID", u.ID),
		logging.Entry("isNewUser", isNew),
	)
	return Result{User: u, Token: token, ExpiresAt: session.ExpiresAt, IsNewUser: isNew}, nil
}

func (s *service) upsertUser(
	ctx context.Context,
	tx uow.Context,
	input Input,
	now time.Time,
) (u user.User, isNew bool, err error) {
	existing, err := tx.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		u, err = s.createUser(ctx, tx, input, now)
		return u, true, err
	}
	if err != nil {
		s.logError(ctx, "Could not get user by email.", input, err)
		return u, false, err
	}

	update := user.UpdateUserInput{ID: existing.ID, UpdatedAt: now}
	if update.Name, err = s.optionalProfileField(input.Name); err != nil {
		return u, false, err
	}
	if update.Country, err = s.optionalProfileField(input.Country); err != nil {
		return u, false, err
	}
	if !update.Name.IsPresent && !update.Country.IsPresent {
		return existing, false, nil
	}

	u, err = tx.Users().Update(ctx, update)
	if err != nil {
		s.logError(ctx, "Could not update user.", input, err)
		return u, false, err
	}
	return u, false, nil
}

func (s *service) createUser(
	ctx context.Context,
	tx uow.Context,
	input Input,
	now time.Time,
) (u user.User, err error) {
	if isBlank(input.Name) || isBlank(input.Country) {
		return u, user.ErrProfileRequired
	}
	profile, err := user.NewProfile(s.sanitizer, input.Name.Value, input.Country.Value)
	if err != nil {
		return u, err
	}

	u, err = tx.Users().Create(ctx, user.CreateUserInput{
		Email:     input.Email,
		Name:      profile.Name,
		Country:   profile.Country,
		CreatedAt: now,
	})
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Warning(ctx, "User created concurrently.", logging.Entry("email", input.Email))
		return u, user.ErrLoginCodeInvalid
	}
	if err != nil {
		s.logError(ctx, "Could not create user.", input, err)
		return u, err
	}
	s.log.Info(ctx, "New user has been created.", logging.Entry("userID", u.ID))
	return u, nil
}

// optionalProfileField returns an absent value for blank input so that an
// existing profile is kept.
func (s *service) optionalProfileField(value c.Optional[string]) (c.Optional[string], error) {
	if isBlank(value) {
		return c.Optional[string]{}, nil
	}
	sanitized := s.sanitizer.Sanitize(value.Value, user.NO_MAX_LEN)
	l := len([]rune(sanitized))
	if l < user.PROFILE_FIELD_MIN_LEN || l > user.PROFILE_FIELD_MAX_LEN {
		return c.Optional[string]{}, user.ErrInvalidProfile
	}
	return c.NewOptional(sanitized, true), nil
}

func (s *service) logError(ctx context.Context, msg string, input Input, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.log.Error(ctx, msg, logging.Entry("email", input.Email), logging.Entry("err", err))
}

func isBlank(value c.Optional[string]) bool {
	return !value.IsPresent || strings.TrimSpace(value.Value) == ""
}
