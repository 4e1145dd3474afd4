package restaurant

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	dbuser "digitalmenu/internal/db/user"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	PUBLIC_ID_1 = restaurant.PublicID("9b7c2f4e-3f7a-4c55-8f3e-0d2a1c9b8e11")
	PUBLIC_ID_2 = restaurant.PublicID("0f0c8d5a-6b1e-4a7d-9c2b-3e4f5a6b7c8d")
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repo  *PgxRepository
	owner user.User
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) SetupTest() {
	owner, err := dbuser.NewPgxRepository(suite.pool).Create(context.Background(), user.CreateUserInput{
		Email:     c.Email("owner@example.com"),
		Name:      "Jane",
		Country:   "Portugal",
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	suite.owner = owner
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxRestaurantRepository(t *testing.T) {
	db.SkipWithoutDatabase(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAndGet() {
	created := s.createRestaurant("bistro", PUBLIC_ID_1, NOW)

	assert := s.Require()
	assert.NotZero(created.ID)
	assert.Equal(s.owner.ID, created.OwnerID)
	assert.Equal(PUBLIC_ID_1, created.PublicID)

	bySlug, err := s.repo.GetBySlug(context.Background(), "bistro")
	assert.Nil(err)
	assert.Equal(created.ID, bySlug.ID)

	byPublicID, err := s.repo.GetByPublicID(context.Background(), PUBLIC_ID_1)
	assert.Nil(err)
	assert.Equal(created.ID, byPublicID.ID)

	exists, err := s.repo.SlugExists(context.Background(), "bistro")
	assert.Nil(err)
	assert.True(exists)
}

func (s *testSuite) TestCreateDuplicateSlug() {
	s.createRestaurant("bistro", PUBLIC_ID_1, NOW)

	_, err := s.repo.Create(context.Background(), restaurant.CreateInput{
		OwnerID:   s.owner.ID,
		Name:      "Bistro",
		Location:  "Lisbon",
		Slug:      "bistro",
		PublicID:  PUBLIC_ID_2,
		CreatedAt: NOW,
	})
	s.ErrorIs(err, restaurant.ErrSlugAlreadyExists)
}

func (s *testSuite) TestGetDoesNotExist() {
	_, err := s.repo.GetBySlug(context.Background(), "missing")
	s.ErrorIs(err, restaurant.ErrRestaurantDoesNotExist)

	_, err = s.repo.GetByPublicID(context.Background(), PUBLIC_ID_2)
	s.ErrorIs(err, restaurant.ErrRestaurantDoesNotExist)

	_, err = s.repo.GetByPublicID(context.Background(), restaurant.PublicID("not-a-uuid"))
	s.ErrorIs(err, restaurant.ErrRestaurantDoesNotExist)
}

func (s *testSuite) TestListNewestFirst() {
	older := s.createRestaurant("older", PUBLIC_ID_1, NOW)
	newer := s.createRestaurant("newer", PUBLIC_ID_2, NOW.Add(time.Hour))

	all, err := s.repo.ListAll(context.Background())
	s.Require().Nil(err)
	s.Require().Len(all, 2)
	s.Equal(newer.ID, all[0].ID)
	s.Equal(older.ID, all[1].ID)

	mine, err := s.repo.ListByOwner(context.Background(), s.owner.ID)
	s.Require().Nil(err)
	s.Len(mine, 2)

	others, err := s.repo.ListByOwner(context.Background(), s.owner.ID+1)
	s.Require().Nil(err)
	s.Empty(others)
}

func (s *testSuite) TestCategoriesAndDishLinks() {
	ctx := context.Background()
	r := s.createRestaurant("bistro", PUBLIC_ID_1, NOW)
	assert := s.Require()

	mains, err := s.repo.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID, Name: "Mains", Slug: "mains", DisplayOrder: 1, CreatedAt: NOW,
	})
	assert.Nil(err)
	starters, err := s.repo.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID, Name: "Starters", Slug: "starters", DisplayOrder: 0, CreatedAt: NOW,
	})
	assert.Nil(err)
	soups, err := s.repo.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID,
		Name:         "Soups",
		Slug:         "soups",
		ParentID:     c.NewOptional(starters.ID, true),
		CreatedAt:    NOW,
	})
	assert.Nil(err)

	_, err = s.repo.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID, Name: "Mains", Slug: "mains", CreatedAt: NOW,
	})
	assert.ErrorIs(err, restaurant.ErrSlugAlreadyExists)

	exists, err := s.repo.CategorySlugExists(ctx, r.ID, "soups")
	assert.Nil(err)
	assert.True(exists)

	categories, err := s.repo.ListCategories(ctx, r.ID)
	assert.Nil(err)
	assert.Len(categories, 3)
	assert.Equal(starters.ID, categories[0].ID)
	assert.Equal(c.NewOptional(starters.ID, true), soups.ParentID)

	soup, err := s.repo.CreateDish(ctx, restaurant.CreateDishInput{
		RestaurantID: r.ID,
		Name:         "Caldo verde",
		Description:  c.NewOptional("Kale soup", true),
		Price:        c.NewOptional(restaurant.Price(650), true),
		IsAvailable:  true,
		CategoryIDs:  []restaurant.CategoryID{soups.ID, mains.ID},
		CreatedAt:    NOW,
	})
	assert.Nil(err)
	assert.Equal(c.NewOptional(restaurant.Price(650), true), soup.Price)
	assert.False(soup.ImageURL.IsPresent)

	_, err = s.repo.CreateDish(ctx, restaurant.CreateDishInput{
		RestaurantID: r.ID,
		Name:         "Hidden",
		IsAvailable:  false,
		CategoryIDs:  []restaurant.CategoryID{mains.ID},
		CreatedAt:    NOW,
	})
	assert.Nil(err)

	links, err := s.repo.ListAvailableDishLinks(ctx, r.ID)
	assert.Nil(err)
	assert.Len(links, 2)
	for _, link := range links {
		assert.Equal(soup.ID, link.Dish.ID)
		if link.CategoryID == soups.ID {
			assert.Equal(int32(0), link.OrderIndex)
		} else {
			assert.Equal(mains.ID, link.CategoryID)
			assert.Equal(int32(1), link.OrderIndex)
		}
	}
}

func (s *testSuite) createRestaurant(slug string, publicID restaurant.PublicID, at time.Time) restaurant.Restaurant {
	s.T().Helper()
	created, err := s.repo.Create(context.Background(), restaurant.CreateInput{
		OwnerID:   s.owner.ID,
		Name:      "Bistro",
		Location:  "Lisbon",
		Slug:      slug,
		PublicID:  publicID,
		CreatedAt: at,
	})
	s.Require().Nil(err)
	return created
}

func TestDecodePrice(t *testing.T) {
	cases := []struct {
		id       string
		numeric  pgtype.Numeric
		expected c.Optional[restaurant.Price]
	}{
		{
			id:       "null",
			numeric:  pgtype.Numeric{Status: pgtype.Null},
			expected: c.Optional[restaurant.Price]{},
		},
		{
			id:       "two decimals",
			numeric:  pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Status: pgtype.Present},
			expected: c.NewOptional(restaurant.Price(1250), true),
		},
		{
			id:       "normalized",
			numeric:  pgtype.Numeric{Int: big.NewInt(125), Exp: -1, Status: pgtype.Present},
			expected: c.NewOptional(restaurant.Price(1250), true),
		},
		{
			id:       "whole",
			numeric:  pgtype.Numeric{Int: big.NewInt(3), Exp: 1, Status: pgtype.Present},
			expected: c.NewOptional(restaurant.Price(3000), true),
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			require.Equal(t, testcase.expected, decodePrice(testcase.numeric))
		})
	}
}

func TestEncodePrice(t *testing.T) {
	encoded := encodePrice(c.NewOptional(restaurant.Price(1999), true))
	require.Equal(t, pgtype.Present, encoded.Status)
	require.Equal(t, c.NewOptional(restaurant.Price(1999), true), decodePrice(encoded))

	require.Equal(t, pgtype.Null, encodePrice(c.Optional[restaurant.Price]{}).Status)
}
