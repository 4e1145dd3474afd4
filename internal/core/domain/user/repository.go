package user

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email     c.Email
	Name      string
	Country   string
	CreatedAt time.Time
}

type UpdateUserInput struct {
	ID        ID
	Name      c.Optional[string]
	Country   c.Optional[string]
	UpdatedAt time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
}

type CreateSessionInput struct {
	UserID    ID
	TokenHash SessionTokenHash
	CreatedAt time.Time
	ExpiresAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) (Session, error)
	// GetUserByToken returns ErrUserDoesNotExist for unknown or expired sessions.
	GetUserByToken(ctx context.Context, tokenHash SessionTokenHash, now time.Time) (User, error)
	// Delete removes every session with the hash; a missing session is not an error.
	Delete(ctx context.Context, tokenHash SessionTokenHash) (deleted int64, err error)
	DeleteExpired(ctx context.Context, now time.Time) (deleted int64, err error)
}

type CreateVerificationCodeInput struct {
	Email     c.Email
	CodeHash  LoginCodeHash
	UserID    c.Optional[ID]
	CreatedAt time.Time
	ExpiresAt time.Time
}

type VerificationCodeRepository interface {
	Create(ctx context.Context, input CreateVerificationCodeInput) (VerificationCode, error)
	// DeleteStale removes the codes of the email that expired or were consumed.
	DeleteStale(ctx context.Context, email c.Email, now time.Time) error
	// GetActive returns ErrLoginCodeInvalid when no unconsumed, unexpired code matches.
	GetActive(ctx context.Context, email c.Email, codeHash LoginCodeHash, now time.Time) (VerificationCode, error)
	// Consume marks the code as used, failing with ErrVerificationCodeConsumed
	// if another request consumed it first.
	Consume(ctx context.Context, id VerificationCodeID, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (deleted int64, err error)
}
