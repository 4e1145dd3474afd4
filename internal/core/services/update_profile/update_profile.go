package updateprofile

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"digitalmenu/internal/core/services/auth"
	"errors"
	"time"
)

type Input struct {
	UserID  user.ID
	Name    string
	Country string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	sanitizer      user.TextSanitizer
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sanitizer user.TextSanitizer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sanitizer == nil {
		panic(e.NewNilArgumentError("sanitizer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		sanitizer:      sanitizer,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	profile, err := user.NewProfile(s.sanitizer, input.Name, input.Country)
	if err != nil {
		return result, err
	}

	updatedUser, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:        input.UserID,
		Name:      c.NewOptional(profile.Name, true),
		Country:   c.NewOptional(profile.Country, true),
		UpdatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user profile.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User profile updated.", logging.Entry("userID", updatedUser.ID))
	return Result{User: updatedUser}, nil
}
