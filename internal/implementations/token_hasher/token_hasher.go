package tokenhasher

import (
	"crypto/hmac"
	"crypto/sha256"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	MIN_SECRET_LEN = 16
	KEY_LEN        = 32
)

var (
	loginCodeInfo    = []byte("digitalmenu login code")
	sessionTokenInfo = []byte("digitalmenu session token")
)

var ErrSecretTooShort = errors.New("secret must be at least 16 characters")

// HMAC hashes login codes and session tokens with two keys derived from
// one secret, so a code hash never equals a token hash.
type HMAC struct {
	loginCodeKey    []byte
	sessionTokenKey []byte
}

func NewHMAC(secret string) (*HMAC, error) {
	if len(secret) < MIN_SECRET_LEN {
		return nil, ErrSecretTooShort
	}
	loginCodeKey, err := deriveKey(secret, loginCodeInfo)
	if err != nil {
		return nil, err
	}
	sessionTokenKey, err := deriveKey(secret, sessionTokenInfo)
	if err != nil {
		return nil, err
	}
	return &HMAC{loginCodeKey: loginCodeKey, sessionTokenKey: sessionTokenKey}, nil
}

func (h *HMAC) HashLoginCode(email c.Email, code user.LoginCode) user.LoginCodeHash {
	return user.LoginCodeHash(sum(h.loginCodeKey, string(email)+":"+string(code)))
}

func (h *HMAC) HashSessionToken(token user.SessionToken) user.SessionTokenHash {
	return user.SessionTokenHash(sum(h.sessionTokenKey, string(token)))
}

func deriveKey(secret string, info []byte) ([]byte, error) {
	key := make([]byte, KEY_LEN)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, info), key); err != nil {
		return nil, err
	}
	return key, nil
}

func sum(key []byte, value string) string {
	hasher := hmac.New(sha256.New, key)
	io.WriteString(hasher, value)
	return hex.EncodeToString(hasher.Sum(nil))
}
