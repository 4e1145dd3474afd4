package uow

import (
	"context"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
	"fmt"
)

type FakeUnitOfWorkContext struct {
	UserRepository             *user.FakeUserRepository
	SessionRepository          *user.FakeSessionRepository
	VerificationCodeRepository *user.FakeVerificationCodeRepository
	RestaurantRepository       *restaurant.FakeRepository
	WasRollbackCalled          bool
	WasCommitCalled            bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	verificationCodeRepository *user.FakeVerificationCodeRepository,
	restaurantRepository *restaurant.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:             userRepository,
		SessionRepository:          sessionRepository,
		VerificationCodeRepository: verificationCodeRepository,
		RestaurantRepository:       restaurantRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) VerificationCodes() user.VerificationCodeRepository {
	return c.VerificationCodeRepository
}

func (c *FakeUnitOfWorkContext) Restaurants() restaurant.Repository {
	return c.RestaurantRepository
}

type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			user.NewFakeVerificationCodeRepository(),
			restaurant.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	return u.Context, nil
}
