package listuserrestaurants

import (
	"context"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestListOnlyOwnedRestaurants(t *testing.T) {
	repository := restaurant.NewFakeRepository()
	ctx := context.Background()
	owners := []struct {
		ID   user.ID
		Slug string
	}{{1, "restaurant-a"}, {2, "restaurant-b"}, {1, "restaurant-c"}}
	for ix, owner := range owners {
		_, err := repository.Create(ctx, restaurant.CreateInput{
			OwnerID:   owner.ID,
			Name:      "Restaurant",
			Location:  "Lisbon",
			Slug:      owner.Slug,
			PublicID:  restaurant.PublicID(owner.Slug),
			CreatedAt: NOW.Add(time.Duration(ix) * time.Hour),
		})
		require.Nil(t, err)
	}
	service := New(logging.NewFakeLogger(), repository)

	result, err := service.Run(ctx, Input{}.WithAuthenticatedUser(user.User{ID: 1}).(Input))

	require.Nil(t, err)
	require.Len(t, result.Restaurants, 2)
	require.Equal(t, "restaurant-c", result.Restaurants[0].Slug)
	require.Equal(t, "restaurant-a", result.Restaurants[1].Slug)
}

func TestListWithoutRestaurants(t *testing.T) {
	service := New(logging.NewFakeLogger(), restaurant.NewFakeRepository())

	result, err := service.Run(context.Background(), Input{UserID: 7})

	require.Nil(t, err)
	require.NotNil(t, result.Restaurants)
	require.Empty(t, result.Restaurants)
}
