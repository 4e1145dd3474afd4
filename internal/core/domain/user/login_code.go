package user

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"regexp"
	"strings"
	"time"
)

const LOGIN_CODE_LENGTH = 6

var loginCodeRegexp = regexp.MustCompile(`^[0-9]{6}$`)

// LoginCode is the one-time code emailed to a user.
type LoginCode string

func (lc LoginCode) String() string {
	return "***"
}

// ParseLoginCode trims the raw input and checks it is six digits.
func ParseLoginCode(raw string) (LoginCode, error) {
	code := strings.TrimSpace(raw)
	if !loginCodeRegexp.MatchString(code) {
		return LoginCode(""), ErrLoginCodeMalformed
	}
	return LoginCode(code), nil
}

type LoginCodeHash string

type LoginCodeGenerator interface {
	GenerateLoginCode() LoginCode
}

type VerificationCodeID int64

type VerificationCode struct {
	ID         VerificationCodeID
	Email      c.Email
	CodeHash   LoginCodeHash
	UserID     c.Optional[ID]
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ConsumedAt c.Optional[time.Time]
}

func (v *VerificationCode) IsActive(now time.Time) bool {
	return !v.ConsumedAt.IsPresent && v.ExpiresAt.After(now)
}

type DeliveryChannel string

const (
	DeliveryChannelEmail   DeliveryChannel = "email"
	DeliveryChannelConsole DeliveryChannel = "console"
)

// LoginCodeDelivery describes how a code reached (or failed to reach)
// the user. FallbackCode is set only when the code was not emailed.
type LoginCodeDelivery struct {
	Channel      DeliveryChannel
	FallbackCode c.Optional[LoginCode]
}

func (d LoginCodeDelivery) IsDelivered() bool {
	return d.Channel == DeliveryChannelEmail
}

type LoginCodeSender interface {
	SendLoginCode(ctx context.Context, email c.Email, code LoginCode) (LoginCodeDelivery, error)
}
