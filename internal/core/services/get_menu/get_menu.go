package getmenu

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/services"
	"errors"
)

// Input selects a restaurant by slug or, when the slug is empty, by
// public id.
type Input struct {
	Slug     string
	PublicID restaurant.PublicID
}

type Result struct {
	Menu restaurant.Menu
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
	r, err := s.getRestaurant(ctx, input)
	if err != nil {
		return result, err
	}

	categories, err := s.restaurantRepository.ListCategories(ctx, r.ID)
	if err != nil {
		s.logError(ctx, "Could not list categories.", r.ID, err)
		return result, err
	}
	links, err := s.restaurantRepository.ListAvailableDishLinks(ctx, r.ID)
	if err != nil {
		s.logError(ctx, "Could not list dishes.", r.ID, err)
		return result, err
	}

	return Result{Menu: restaurant.BuildMenu(r, categories, links)}, nil
}

func (s *service) getRestaurant(ctx context.Context, input Input) (r restaurant.Restaurant, err error) {
	switch {
	case input.Slug != "":
		r, err = s.restaurantRepository.GetBySlug(ctx, input.Slug)
	case input.PublicID != "":
		r, err = s.restaurantRepository.GetByPublicID(ctx, input.PublicID)
	default:
		return r, restaurant.ErrRestaurantDoesNotExist
	}
	if err != nil && !errors.Is(err, restaurant.ErrRestaurantDoesNotExist) && !errors.Is(err, context.Canceled) {
		s.log.Error(ctx, "Could not get restaurant.", logging.Entry("input", input), logging.Entry("err", err))
	}
	return r, err
}

func (s *service) logError(ctx context.Context, msg string, id restaurant.ID, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.log.Error(ctx, msg, logging.Entry("restaurantID", id), logging.Entry("err", err))
}
