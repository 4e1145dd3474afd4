package importmenu

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/logging"
	"digitalmenu/internal/core/domain/restaurant"
	uow "digitalmenu/internal/core/domain/unit_of_work"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/core/services"
	"errors"
	"fmt"
	"time"
)

const (
	RESTAURANT_RANDOM_SLUG_LEN = 8
	CATEGORY_RANDOM_SLUG_LEN   = 6
)

type Input struct {
	Menu restaurant.MenuImport
}

type Result struct {
	Restaurant restaurant.Restaurant
	Categories int
	Dishes     int
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	slugGenerator     restaurant.SlugGenerator
	publicIDGenerator restaurant.PublicIDGenerator
	sanitizer         user.TextSanitizer
	now               func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	slugGenerator restaurant.SlugGenerator,
	publicIDGenerator restaurant.PublicIDGenerator,
	sanitizer user.TextSanitizer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if slugGenerator == nil {
		panic(e.NewNilArgumentError("slugGenerator"))
	}
	if publicIDGenerator == nil {
		panic(e.NewNilArgumentError("publicIDGenerator"))
	}
	if sanitizer == nil {
		panic(e.NewNilArgumentError("sanitizer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		slugGenerator:     slugGenerator,
		publicIDGenerator: publicIDGenerator,
		sanitizer:         sanitizer,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	menu := s.sanitize(input.Menu)
	if err := menu.Validate(); err != nil {
		return result, err
	}
	now := s.now()

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		s.logError(ctx, "Could not begin unit of work.", err)
		return result, err
	}
	defer uow.Rollback(ctx)

	owner, err := uow.Users().GetByEmail(ctx, menu.OwnerEmail)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Warning(ctx, "Menu owner is not registered.", logging.Entry("email", menu.OwnerEmail))
		return result, err
	}
	if err != nil {
		s.logError(ctx, "Could not get menu owner.", err)
		return result, err
	}

	slug, err := s.uniqueSlug(ctx, menu.Name, RESTAURANT_RANDOM_SLUG_LEN, uow.Restaurants().SlugExists)
	if err != nil {
		s.logError(ctx, "Could not generate restaurant slug.", err)
		return result, err
	}
	r, err := uow.Restaurants().Create(ctx, restaurant.CreateInput{
		OwnerID:   owner.ID,
		Name:      menu.Name,
		Location:  menu.Location,
		Slug:      slug,
		PublicID:  s.publicIDGenerator.GeneratePublicID(),
		CreatedAt: now,
	})
	if err != nil {
		s.logError(ctx, "Could not create restaurant.", err)
		return result, err
	}

	categoryIDs := make(map[string]restaurant.CategoryID)
	err = s.createCategories(ctx, uow.Restaurants(), r.ID, menu.Categories, c.Optional[restaurant.CategoryID]{}, categoryIDs, now)
	if err != nil {
		s.logError(ctx, "Could not create categories.", err)
		return result, err
	}

	for _, dish := range menu.Dishes {
		ids := make([]restaurant.CategoryID, len(dish.Categories))
		for ix, name := range dish.Categories {
			ids[ix] = categoryIDs[name]
		}
		_, err = uow.Restaurants().CreateDish(ctx, restaurant.CreateDishInput{
			RestaurantID: r.ID,
			Name:         dish.Name,
			Description:  dish.Description,
			Price:        dish.Price,
			ImageURL:     dish.ImageURL,
			SpiceLevel:   dish.SpiceLevel,
			IsAvailable:  dish.IsAvailable.ValueOr(true),
			SortOrder:    dish.SortOrder,
			CategoryIDs:  ids,
			CreatedAt:    now,
		})
		if err != nil {
			s.logError(ctx, "Could not create dish.", err)
			return result, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		s.logError(ctx, "Could not commit unit of work.", err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Menu imported.",
		logging.Entry("restaurantID", r.ID),
		logging.Entry("slug", r.Slug),
		logging.Entry("categories", len(categoryIDs)),
		logging.Entry("dishes", len(menu.Dishes)),
	)
	return Result{Restaurant: r, Categories: len(categoryIDs), Dishes: len(menu.Dishes)}, nil
}

func (s *service) createCategories(
	ctx context.Context,
	repository restaurant.Repository,
	restaurantID restaurant.ID,
	categories []restaurant.CategoryImport,
	parentID c.Optional[restaurant.CategoryID],
	ids map[string]restaurant.CategoryID,
	now time.Time,
) error {
	slugExists := func(ctx context.Context, slug string) (bool, error) {
		return repository.CategorySlugExists(ctx, restaurantID, slug)
	}
	for ix, category := range categories {
		slug, err := s.uniqueSlug(ctx, category.Name, CATEGORY_RANDOM_SLUG_LEN, slugExists)
		if err != nil {
			return err
		}
		created, err := repository.CreateCategory(ctx, restaurant.CreateCategoryInput{
			RestaurantID: restaurantID,
			Name:         category.Name,
			Slug:         slug,
			ParentID:     parentID,
			DisplayOrder: category.DisplayOrder.ValueOr(int32(ix)),
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}
		ids[category.Name] = created.ID
		err = s.createCategories(ctx, repository, restaurantID, category.Children, c.NewOptional(created.ID, true), ids, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// uniqueSlug tries base, base-2, base-3 and so on. A random base is used
// when nothing is left of the name.
func (s *service) uniqueSlug(
	ctx context.Context,
	name string,
	randomLength int,
	exists func(ctx context.Context, slug string) (bool, error),
) (string, error) {
	base := s.slugGenerator.Slugify(name)
	if base == "" {
		base = s.slugGenerator.RandomSlug(randomLength)
	}
	slug := base
	for attempt := 2; ; attempt++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, attempt)
	}
}

func (s *service) sanitize(menu restaurant.MenuImport) restaurant.MenuImport {
	menu.Name = s.sanitizer.Sanitize(menu.Name, restaurant.NAME_MAX_LEN)
	menu.Location = s.sanitizer.Sanitize(menu.Location, restaurant.NAME_MAX_LEN)
	menu.Categories = s.sanitizeCategories(menu.Categories)

	dishes := make([]restaurant.DishImport, len(menu.Dishes))
	for ix, dish := range menu.Dishes {
		dish.Name = s.sanitizer.Sanitize(dish.Name, restaurant.NAME_MAX_LEN)
		dish.Description = s.sanitizeOptional(dish.Description, restaurant.DESCRIPTION_MAX_LEN)
		dish.SpiceLevel = s.sanitizeOptional(dish.SpiceLevel, restaurant.SPICE_LEVEL_MAX_LEN)
		names := make([]string, len(dish.Categories))
		for jx, name := range dish.Categories {
			names[jx] = s.sanitizer.Sanitize(name, restaurant.CATEGORY_NAME_MAX_LEN)
		}
		dish.Categories = names
		dishes[ix] = dish
	}
	menu.Dishes = dishes
	return menu
}

func (s *service) sanitizeCategories(categories []restaurant.CategoryImport) []restaurant.CategoryImport {
	sanitized := make([]restaurant.CategoryImport, len(categories))
	for ix, category := range categories {
		category.Name = s.sanitizer.Sanitize(category.Name, restaurant.CATEGORY_NAME_MAX_LEN)
		category.Children = s.sanitizeCategories(category.Children)
		sanitized[ix] = category
	}
	return sanitized
}

func (s *service) sanitizeOptional(value c.Optional[string], maxLength int) c.Optional[string] {
	if !value.IsPresent {
		return value
	}
	return c.NewOptional(s.sanitizer.Sanitize(value.Value, maxLength), true)
}

func (s *service) logError(ctx context.Context, msg string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.log.Error(ctx, msg, logging.Entry("err", err))
}
