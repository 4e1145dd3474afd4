package getmenu

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/services"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const PUBLIC_ID = restaurant.PublicID("6f1c5c1e-7d0a-4a59-9d53-3a5a3c1b2f10")

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Repository *restaurant.FakeRepository
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Repository = restaurant.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.Repository)
	suite.createMenu()
}

func TestGetMenuService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestBySlug() {
	result, err := suite.Service.Run(context.Background(), Input{Slug: "casa-lisboa"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Casa Lisboa", result.Menu.Restaurant.Name)
	assert.Len(result.Menu.Categories, 1)
	assert.Len(result.Menu.Categories[0].Dishes, 1)
	assert.Equal("Bacalhau", result.Menu.Categories[0].Dishes[0].Name)
	assert.Len(result.Menu.Categories[0].Children, 1)
}

func (suite *testSuite) TestByPublicID() {
	result, err := suite.Service.Run(context.Background(), Input{PublicID: PUBLIC_ID})

	suite.Require().Nil(err)
	suite.Require().Equal("casa-lisboa", result.Menu.Restaurant.Slug)
}

func (suite *testSuite) TestUnknownRestaurant() {
	for _, input := range []Input{{Slug: "unknown"}, {PublicID: "unknown"}, {}} {
		_, err := suite.Service.Run(context.Background(), input)
		suite.Require().True(errors.Is(err, restaurant.ErrRestaurantDoesNotExist))
	}
}

func (suite *testSuite) createMenu() {
	ctx := context.Background()
	assert := suite.Require()
	r, err := suite.Repository.Create(ctx, restaurant.CreateInput{
		OwnerID:   1,
		Name:      "Casa Lisboa",
		Location:  "Lisbon",
		Slug:      "casa-lisboa",
		PublicID:  PUBLIC_ID,
		CreatedAt: NOW,
	})
	assert.Nil(err)
	mains, err := suite.Repository.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID,
		Name:         "Mains",
		Slug:         "mains",
		CreatedAt:    NOW,
	})
	assert.Nil(err)
	fish, err := suite.Repository.CreateCategory(ctx, restaurant.CreateCategoryInput{
		RestaurantID: r.ID,
		Name:         "Fish",
		Slug:         "fish",
		ParentID:     c.NewOptional(mains.ID, true),
		CreatedAt:    NOW,
	})
	assert.Nil(err)
	_, err = suite.Repository.CreateDish(ctx, restaurant.CreateDishInput{
		RestaurantID: r.ID,
		Name:         "Bacalhau",
		Price:        c.NewOptional(restaurant.Price(1850), true),
		IsAvailable:  true,
		CategoryIDs:  []restaurant.CategoryID{mains.ID, fish.ID},
		CreatedAt:    NOW,
	})
	assert.Nil(err)
	_, err = suite.Repository.CreateDish(ctx, restaurant.CreateDishInput{
		RestaurantID: r.ID,
		Name:         "Sold out",
		IsAvailable:  false,
		CategoryIDs:  []restaurant.CategoryID{mains.ID},
		CreatedAt:    NOW,
	})
	assert.Nil(err)
}
