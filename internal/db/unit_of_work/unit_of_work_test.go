package uow

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const CODE_HASH = user.LoginCodeHash("test-code-hash")

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestConsumeCodeOnlyOnce() {
	codeID := s.createCode()
	now := time.Now().UTC()

	var (
		wg        sync.WaitGroup
		lock      sync.Mutex
		succeeded int
		consumed  int
	)
	wg.Add(10)

	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			ctx := context.Background()
			uow, err := s.uow.Begin(ctx)
			if err != nil {
				s.Fail("could not begin unit of work")
				return
			}
			defer uow.Rollback(ctx)

			err = uow.VerificationCodes().Consume(ctx, codeID, now)
			if errors.Is(err, user.ErrVerificationCodeConsumed) {
				lock.Lock()
				consumed += 1
				lock.Unlock()
				return
			}
			if err != nil {
				s.Fail("could not consume code", "%v", err)
				return
			}
			if err := uow.Commit(ctx); err != nil {
				s.Fail("could not commit", "%v", err)
				return
			}
			lock.Lock()
			succeeded += 1
			lock.Unlock()
		}()
	}

	wg.Wait()
	s.Equal(1, succeeded)
	s.Equal(9, consumed)
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		Email:     c.Email("owner@example.com"),
		Name:      "Jane",
		Country:   "Portugal",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Rollback(ctx))

	other, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer other.Rollback(ctx)
	_, err = other.Users().GetByEmail(ctx, c.Email("owner@example.com"))
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) createCode() user.VerificationCodeID {
	s.T().Helper()

	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.FailNowf("could not begin uow", "%v", err)
	}
	defer uow.Rollback(ctx)

	now := time.Now().UTC()
	code, err := uow.VerificationCodes().Create(ctx, user.CreateVerificationCodeInput{
		Email:     c.Email("owner@example.com"),
		CodeHash:  CODE_HASH,
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	})
	if err != nil {
		s.FailNowf("could not create code", "%v", err)
	}

	s.Require().Nil(uow.Commit(ctx))
	return code.ID
}
