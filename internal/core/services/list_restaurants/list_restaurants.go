package listrestaurants

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/services"
	"errors"
)

type Input struct{}

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
	restaurants, err := s.restaurantRepository.ListAll(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list restaurants.", logging.Entry("err", err))
		return result, err
	}
	return Result{Restaurants: restaurants}, nil
}
