package user

import (
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"fmt"
	"time"
)

const (
	PROFILE_FIELD_MIN_LEN = 2
	PROFILE_FIELD_MAX_LEN = 120

	// NO_MAX_LEN keeps the sanitized text whole so length checks see it.
	NO_MAX_LEN = -1
)

type ID int64

type User struct {
	ID        ID
	Email     c.Email
	Name      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not defined for user %d", u.ID))
	}
	return nil
}

// TextSanitizer strips markup from free text supplied by users.
type TextSanitizer interface {
	Sanitize(text string, maxLength int) string
}

// Profile is the name and country an owner provides on first sign in.
type Profile struct {
	Name    string
	Country string
}

// NewProfile sanitizes both fields and checks their length.
func NewProfile(sanitizer TextSanitizer, name string, country string) (p Profile, err error) {
	p = Profile{
		Name:    sanitizer.Sanitize(name, NO_MAX_LEN),
		Country: sanitizer.Sanitize(country, NO_MAX_LEN),
	}
	if !isValidProfileField(p.Name) || !isValidProfileField(p.Country) {
		return p, ErrInvalidProfile
	}
	return p, nil
}

func isValidProfileField(value string) bool {
	l := len([]rune(value))
	return l >= PROFILE_FIELD_MIN_LEN && l <= PROFILE_FIELD_MAX_LEN
}
