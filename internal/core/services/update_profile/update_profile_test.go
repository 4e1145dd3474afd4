package updateprofile

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		user.NewFakeTextSanitizer(),
		func() time.Time { return NOW },
	)
}

func TestUpdateProfileService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	u := suite.createUser()

	result, err := suite.Service.Run(
		context.Background(),
		Input{Name: " Ana Silva ", Country: "Portugal"}.WithAuthenticatedUser(u).(Input),
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(u.ID, result.User.ID)
	assert.Equal("Ana Silva", result.User.Name)
	assert.Equal("Portugal", result.User.Country)
	assert.Equal(NOW, result.User.UpdatedAt)
}

func (suite *testSuite) TestInvalidProfile() {
	u := suite.createUser()

	_, err := suite.Service.Run(
		context.Background(),
		Input{UserID: u.ID, Name: "A", Country: "Portugal"},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrInvalidProfile))
	stored, _ := suite.UserRepository.GetByID(context.Background(), u.ID)
	assert.Equal("Owner", stored.Name)
}

func (suite *testSuite) TestTooLongProfile() {
	u := suite.createUser()

	for _, input := range []Input{
		{UserID: u.ID, Name: strings.Repeat("n", user.PROFILE_FIELD_MAX_LEN+1), Country: "Portugal"},
		{UserID: u.ID, Name: "Ana", Country: strings.Repeat("c", 300)},
	} {
		_, err := suite.Service.Run(context.Background(), input)
		suite.Require().True(errors.Is(err, user.ErrInvalidProfile))
	}

	stored, _ := suite.UserRepository.GetByID(context.Background(), u.ID)
	suite.Require().Equal("Owner", stored.Name)
	suite.Require().Equal("Spain", stored.Country)
}

func (suite *testSuite) TestUnknownUser() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{UserID: 42, Name: "Ana", Country: "Portugal"},
	)

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) createUser() user.User {
	suite.T().Helper()
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:     c.NewEmail("owner@example.com"),
		Name:      "Owner",
		Country:   "Spain",
		CreatedAt: NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	return u
}
