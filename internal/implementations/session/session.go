package session

import (
	"crypto/rand"
	"digitalmenu/internal/core/domain/user"
	"encoding/hex"
)

const TOKEN_BYTES = 32

type TokenGenerator struct{}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// GenerateSessionToken returns 32 random bytes encoded as 64 hex characters.
func (g *TokenGenerator) GenerateSessionToken() user.SessionToken {
	b := make([]byte, TOKEN_BYTES)
	if _, err := rand.Read(b); err != nil {
		panic("Could not read random bytes: " + err.Error())
	}
	return user.SessionToken(hex.EncodeToString(b))
}
