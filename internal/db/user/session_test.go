package user

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN_HASH = user.SessionTokenHash("test-session-token-hash")

type testSessionSuite struct {
	suite.Suite
	pool              *pgxpool.Pool
	userRepository    *PgxUserRepository
	sessionRepository *PgxSessionRepository
}

func (suite *testSessionSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepository = NewPgxRepository(suite.pool)
	suite.sessionRepository = NewPgxSessionRepository(suite.pool)
}

func (suite *testSessionSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSessionSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSessionSuite))
}

func (s *testSessionSuite) TestCreate() {
	owner := s.createUser()

	session, err := s.createSession(owner.ID, NOW.Add(time.Hour))
	s.Require().Nil(err)
	s.NotZero(session.ID)
	s.Equal(owner.ID, session.UserID)
	s.Equal(SESSION_TOKEN_HASH, session.TokenHash)

	u, err := s.sessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN_HASH, NOW)
	s.Require().Nil(err)
	s.Equal(owner.ID, u.ID)
}

func (s *testSessionSuite) TestCreateDuplicateHash() {
	owner := s.createUser()
	_, err := s.createSession(owner.ID, NOW.Add(time.Hour))
	s.Require().Nil(err)

	_, err = s.createSession(owner.ID, NOW.Add(time.Hour))
	s.NotNil(err)
}

func (s *testSessionSuite) TestGetUserByTokenExpired() {
	owner := s.createUser()
	_, err := s.createSession(owner.ID, NOW)
	s.Require().Nil(err)

	_, err = s.sessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN_HASH, NOW)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSessionSuite) TestGetUserByTokenUnknown() {
	_, err := s.sessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN_HASH, NOW)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSessionSuite) TestDelete() {
	owner := s.createUser()
	_, err := s.createSession(owner.ID, NOW.Add(time.Hour))
	s.Require().Nil(err)

	deleted, err := s.sessionRepository.Delete(context.Background(), SESSION_TOKEN_HASH)
	s.Require().Nil(err)
	s.Equal(int64(1), deleted)

	_, err = s.sessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN_HASH, NOW)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSessionSuite) TestDeleteMissing() {
	deleted, err := s.sessionRepository.Delete(context.Background(), SESSION_TOKEN_HASH)
	s.Nil(err)
	s.Equal(int64(0), deleted)
}

func (s *testSessionSuite) TestDeleteExpired() {
	owner := s.createUser()
	_, err := s.createSession(owner.ID, NOW.Add(-time.Minute))
	s.Require().Nil(err)
	_, err = s.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID:    owner.ID,
		TokenHash: user.SessionTokenHash("another-hash"),
		CreatedAt: NOW,
		ExpiresAt: NOW.Add(time.Hour),
	})
	s.Require().Nil(err)

	deleted, err := s.sessionRepository.DeleteExpired(context.Background(), NOW)
	s.Require().Nil(err)
	s.Equal(int64(1), deleted)

	u, err := s.sessionRepository.GetUserByToken(context.Background(), user.SessionTokenHash("another-hash"), NOW)
	s.Nil(err)
	s.Equal(owner.ID, u.ID)
}

func (s *testSessionSuite) createSession(userID user.ID, expiresAt time.Time) (user.Session, error) {
	return s.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID:    userID,
		TokenHash: SESSION_TOKEN_HASH,
		CreatedAt: NOW.Add(-time.Hour),
		ExpiresAt: expiresAt,
	})
}

func (s *testSessionSuite) createUser() user.User {
	s.T().Helper()
	u, err := s.userRepository.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email(EMAIL),
		Name:      NAME,
		Country:   COUNTRY,
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	return u
}
