package user

import (
	c "digitalmenu/internal/core/domain/common"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoginCode(t *testing.T) {
	cases := []struct {
		raw      string
		expected LoginCode
		isValid  bool
	}{
		{raw: "123456", expected: "123456", isValid: true},
		{raw: " 654321\n", expected: "654321", isValid: true},
		{raw: "12345", isValid: false},
		{raw: "1234567", isValid: false},
		{raw: "12a456", isValid: false},
		{raw: "", isValid: false},
		{raw: "１２３４５６", isValid: false},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			code, err := ParseLoginCode(testcase.raw)
			if !testcase.isValid {
				assert.ErrorIs(t, err, ErrLoginCodeMalformed)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, testcase.expected, code)
		})
	}
}

func TestLoginCodeIsMaskedWhenFormatted(t *testing.T) {
	assert.Equal(t, "***", LoginCode("123456").String())
}

func TestNewProfile(t *testing.T) {
	sanitizer := NewFakeTextSanitizer()

	profile, err := NewProfile(sanitizer, "  Ana  ", "Portugal")
	require.Nil(t, err)
	assert.Equal(t, Profile{Name: "Ana", Country: "Portugal"}, profile)

	_, err = NewProfile(sanitizer, "A", "Portugal")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewProfile(sanitizer, "Ana", " ")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	profile, err = NewProfile(sanitizer, strings.Repeat("n", PROFILE_FIELD_MAX_LEN), "Chile")
	require.Nil(t, err)
	assert.Len(t, profile.Name, PROFILE_FIELD_MAX_LEN)

	_, err = NewProfile(sanitizer, strings.Repeat("n", PROFILE_FIELD_MAX_LEN+1), "Chile")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewProfile(sanitizer, "Ana", strings.Repeat("c", 300))
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestSessionExpiresAt(t *testing.T) {
	createdAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	expiresAt := SessionExpiresAt(createdAt, 30)
	assert.True(t, expiresAt.Equal(time.Date(2024, 2, 14, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, expiresAt.Location())
}

func TestVerificationCodeIsActive(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	code := VerificationCode{ExpiresAt: now.Add(time.Minute)}
	assert.True(t, code.IsActive(now))

	code.ConsumedAt = c.NewOptional(now, true)
	assert.False(t, code.IsActive(now))

	expired := VerificationCode{ExpiresAt: now}
	assert.False(t, expired.IsActive(now))
}
