package user

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"fmt"
	"strings"
	"sync"
	"time"
)

type FakeLoginCodeGenerator struct {
	Code LoginCode
}

func NewFakeLoginCodeGenerator(code string) *FakeLoginCodeGenerator {
	return &FakeLoginCodeGenerator{Code: LoginCode(code)}
}

func (g *FakeLoginCodeGenerator) GenerateLoginCode() LoginCode {
	return g.Code
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

// FakeTokenHasher is reversible on purpose so tests can read hashes.
type FakeTokenHasher struct{}

func NewFakeTokenHasher() *FakeTokenHasher {
	return &FakeTokenHasher{}
}

func (h *FakeTokenHasher) HashLoginCode(email c.Email, code LoginCode) LoginCodeHash {
	return LoginCodeHash(fmt.Sprintf("code:%s:%s", email, string(code)))
}

func (h *FakeTokenHasher) HashSessionToken(token SessionToken) SessionTokenHash {
	return SessionTokenHash("session:" + string(token))
}

type FakeTextSanitizer struct{}

func NewFakeTextSanitizer() *FakeTextSanitizer {
	return &FakeTextSanitizer{}
}

func (s *FakeTextSanitizer) Sanitize(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if runes := []rune(text); maxLength >= 0 && len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return text
}

type FakeLoginCodeSender struct {
	Sent        []LoginCode
	SentTo      []c.Email
	Channel     DeliveryChannel
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeLoginCodeSender() *FakeLoginCodeSender {
	return &FakeLoginCodeSender{Channel: DeliveryChannelEmail}
}

func (s *FakeLoginCodeSender) SendLoginCode(
	ctx context.Context,
	email c.Email,
	code LoginCode,
) (d LoginCodeDelivery, err error) {
	if s.ReturnError {
		return d, fmt.Errorf("could not send login code to %s", email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, code)
	s.SentTo = append(s.SentTo, email)
	d.Channel = s.Channel
	if s.Channel != DeliveryChannelEmail {
		d.FallbackCode = c.NewOptional(code, true)
	}
	return d, nil
}

func (s *FakeLoginCodeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:        maxID + 1,
		Email:     input.Email,
		Name:      input.Name,
		Country:   input.Country,
		CreatedAt: input.CreatedAt,
		UpdatedAt: input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.Name.IsPresent {
				r.Users[ix].Name = input.Name.Value
			}
			if input.Country.IsPresent {
				r.Users[ix].Country = input.Country.Value
			}
			r.Users[ix].UpdatedAt = input.UpdatedAt
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	Sessions       []Session
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{UserRepository: userRepository}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) (s Session, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	s = Session{
		ID:        SessionID(len(r.Sessions) + 1),
		UserID:    input.UserID,
		TokenHash: input.TokenHash,
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	}
	r.Sessions = append(r.Sessions, s)
	return s, nil
}

func (r *FakeSessionRepository) GetUserByToken(
	ctx context.Context,
	tokenHash SessionTokenHash,
	now time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get session")
	}
	r.lock.Lock()
	var userID ID
	found := false
	for _, s := range r.Sessions {
		if s.TokenHash == tokenHash && s.ExpiresAt.After(now) {
			userID = s.UserID
			found = true
			break
		}
	}
	r.lock.Unlock()
	if !found {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, tokenHash SessionTokenHash) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete session")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.deleteWhere(func(s Session) bool { return s.TokenHash == tokenHash }), nil
}

func (r *FakeSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete expired sessions")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.deleteWhere(func(s Session) bool { return !s.ExpiresAt.After(now) }), nil
}

func (r *FakeSessionRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Sessions)
}

func (r *FakeSessionRepository) deleteWhere(match func(s Session) bool) int64 {
	kept := r.Sessions[:0]
	deleted := int64(0)
	for _, s := range r.Sessions {
		if match(s) {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.Sessions = kept
	return deleted
}

type FakeVerificationCodeRepository struct {
	Codes       []VerificationCode
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeVerificationCodeRepository() *FakeVerificationCodeRepository {
	return &FakeVerificationCodeRepository{}
}

func (r *FakeVerificationCodeRepository) Create(
	ctx context.Context,
	input CreateVerificationCodeInput,
) (v VerificationCode, err error) {
	if r.ReturnError {
		return v, fmt.Errorf("could not create verification code %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := VerificationCodeID(0)
	for _, v := range r.Codes {
		if v.ID > maxID {
			maxID = v.ID
		}
	}
	v = VerificationCode{
		ID:        maxID + 1,
		Email:     input.Email,
		CodeHash:  input.CodeHash,
		UserID:    input.UserID,
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	}
	r.Codes = append(r.Codes, v)
	return v, nil
}

func (r *FakeVerificationCodeRepository) DeleteStale(ctx context.Context, email c.Email, now time.Time) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete stale codes")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.deleteWhere(func(v VerificationCode) bool { return v.Email == email && !v.IsActive(now) })
	return nil
}

func (r *FakeVerificationCodeRepository) GetActive(
	ctx context.Context,
	email c.Email,
	codeHash LoginCodeHash,
	now time.Time,
) (v VerificationCode, err error) {
	if r.ReturnError {
		return v, fmt.Errorf("could not get verification code")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, v := range r.Codes {
		if v.Email == email && v.CodeHash == codeHash && v.IsActive(now) {
			return v, nil
		}
	}
	return v, ErrLoginCodeInvalid
}

func (r *FakeVerificationCodeRepository) Consume(ctx context.Context, id VerificationCodeID, at time.Time) error {
	if r.ReturnError {
		return fmt.Errorf("could not consume verification code")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, v := range r.Codes {
		if v.ID == id {
			if v.ConsumedAt.IsPresent {
				return ErrVerificationCodeConsumed
			}
			r.Codes[ix].ConsumedAt = c.NewOptional(at, true)
			return nil
		}
	}
	return ErrVerificationCodeConsumed
}

func (r *FakeVerificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete expired codes")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.deleteWhere(func(v VerificationCode) bool { return !v.IsActive(now) }), nil
}

func (r *FakeVerificationCodeRepository) ByEmail(email c.Email) []VerificationCode {
	r.lock.Lock()
	defer r.lock.Unlock()
	codes := make([]VerificationCode, 0)
	for _, v := range r.Codes {
		if v.Email == email {
			codes = append(codes, v)
		}
	}
	return codes
}

func (r *FakeVerificationCodeRepository) deleteWhere(match func(v VerificationCode) bool) int64 {
	kept := r.Codes[:0]
	deleted := int64(0)
	for _, v := range r.Codes {
		if match(v) {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	r.Codes = kept
	return deleted
}
