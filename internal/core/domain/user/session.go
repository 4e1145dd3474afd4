package user

import (
	c "digitalmenu/internal/core/domain/common"
	"time"

	"github.com/golang-module/carbon/v2"
)

type SessionToken string

type SessionTokenHash string

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}

// TokenHasher produces the keyed digests stored instead of raw codes
// and tokens.
type TokenHasher interface {
	HashLoginCode(email c.Email, code LoginCode) LoginCodeHash
	HashSessionToken(token SessionToken) SessionTokenHash
}

type SessionID int64

type Session struct {
	ID        SessionID
	UserID    ID
	TokenHash SessionTokenHash
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionExpiresAt adds maxAgeDays calendar days to createdAt.
func SessionExpiresAt(createdAt time.Time, maxAgeDays int) time.Time {
	return carbon.Time2Carbon(createdAt).AddDays(maxAgeDays).Carbon2Time().In(createdAt.Location())
}
