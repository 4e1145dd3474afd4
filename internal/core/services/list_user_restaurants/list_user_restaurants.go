package listuserrestaurants

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"digitalmenu/internal/core/services/auth"
	"errors"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Restaurants []restaurant.Restaurant
}

type service struct {
	log                  logging.Logger
	restaurantRepository restaurant.Repository
}

func New(
	log logging.Logger,
	restaurantRepository restaurant.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if restaurantRepository == nil {
		panic(e.NewNilArgumentError("restaurantRepository"))
	}
	return &service{
		log:                  log,
		restaurantRepository: restaurantRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	restaurants, err := s.restaurantRepository.ListByOwner(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list user restaurants.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Restaurants: restaurants}, nil
}
