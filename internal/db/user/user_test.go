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

const (
	EMAIL   = "owner@example.com"
	NAME    = "Jane"
	COUNTRY = "Portugal"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateSuccess() {
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email(EMAIL),
		Name:      NAME,
		Country:   COUNTRY,
		CreatedAt: NOW,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.NotZero(u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(NAME, u.Name)
	assert.Equal(COUNTRY, u.Country)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.True(NOW.Equal(u.UpdatedAt))
}

func (s *testSuite) TestCreateDuplicateEmail() {
	input := user.CreateUserInput{Email: c.Email(EMAIL), Name: NAME, Country: COUNTRY, CreatedAt: NOW}
	_, err := s.repo.Create(context.Background(), input)
	s.Require().Nil(err)

	_, err = s.repo.Create(context.Background(), input)
	s.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByIDAndEmail() {
	created := s.createUser(EMAIL)

	assert := s.Require()
	byID, err := s.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(created.Email, byID.Email)

	byEmail, err := s.repo.GetByEmail(context.Background(), c.Email(EMAIL))
	assert.Nil(err)
	assert.Equal(created.ID, byEmail.ID)
}

func (s *testSuite) TestGetDoesNotExist() {
	_, err := s.repo.GetByID(context.Background(), user.ID(42))
	s.ErrorIs(err, user.ErrUserDoesNotExist)

	_, err = s.repo.GetByEmail(context.Background(), c.Email("nobody@example.com"))
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestUpdateKeepsAbsentFields() {
	created := s.createUser(EMAIL)
	updatedAt := NOW.Add(time.Hour)

	u, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:        created.ID,
		Name:      c.NewOptional("John", true),
		UpdatedAt: updatedAt,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("John", u.Name)
	assert.Equal(COUNTRY, u.Country)
	assert.True(updatedAt.Equal(u.UpdatedAt))
	assert.True(NOW.Equal(u.CreatedAt))
}

func (s *testSuite) TestUpdateDoesNotExist() {
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:        user.ID(42),
		Name:      c.NewOptional("John", true),
		UpdatedAt: NOW,
	})
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) createUser(email string) user.User {
	s.T().Helper()
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:     c.Email(email),
		Name:      NAME,
		Country:   COUNTRY,
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	return u
}
