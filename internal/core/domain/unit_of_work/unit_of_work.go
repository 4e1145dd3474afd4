package uow

import (
	"context"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	VerificationCodes() user.VerificationCodeRepository
	Restaurants() restaurant.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
