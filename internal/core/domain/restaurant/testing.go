package restaurant

import (
	"context"
	"digitalmenu/internal/core/domain/user"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type FakeSlugGenerator struct {
	Random string
}

func NewFakeSlugGenerator(random string) *FakeSlugGenerator {
	return &FakeSlugGenerator{Random: random}
}

// Slugify keeps ASCII letters and digits and turns spaces into dashes.
func (g *FakeSlugGenerator) Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}

func (g *FakeSlugGenerator) RandomSlug(length int) string {
	if len(g.Random) > length {
		return g.Random[:length]
	}
	return g.Random
}

type FakePublicIDGenerator struct {
	PublicID PublicID
}

func NewFakePublicIDGenerator(publicID string) *FakePublicIDGenerator {
	return &FakePublicIDGenerator{PublicID: PublicID(publicID)}
}

func (g *FakePublicIDGenerator) GeneratePublicID() PublicID {
	return g.PublicID
}

type FakeRepository struct {
	Restaurants []Restaurant
	Categories  []Category
	Dishes      []Dish
	Links       []DishLink
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (restaurant Restaurant, err error) {
	if r.ReturnError {
		return restaurant, fmt.Errorf("could not create restaurant %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Restaurants {
		if existing.Slug == input.Slug {
			return restaurant, ErrSlugAlreadyExists
		}
	}
	restaurant = Restaurant{
		ID:        ID(len(r.Restaurants) + 1),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Location:  input.Location,
		Slug:      input.Slug,
		PublicID:  input.PublicID,
		CreatedAt: input.CreatedAt,
		UpdatedAt: input.CreatedAt,
	}
	r.Restaurants = append(r.Restaurants, restaurant)
	return restaurant, nil
}

func (r *FakeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Restaurants {
		if existing.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeRepository) ListAll(ctx context.Context) ([]Restaurant, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list restaurants")
	}
	return r.listWhere(func(Restaurant) bool { return true }), nil
}

func (r *FakeRepository) ListByOwner(ctx context.Context, ownerID user.ID) ([]Restaurant, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list restaurants")
	}
	return r.listWhere(func(restaurant Restaurant) bool { return restaurant.OwnerID == ownerID }), nil
}

func (r *FakeRepository) GetBySlug(ctx context.Context, slug string) (restaurant Restaurant, err error) {
	return r.getWhere(func(restaurant Restaurant) bool { return restaurant.Slug == slug })
}

func (r *FakeRepository) GetByPublicID(ctx context.Context, publicID PublicID) (restaurant Restaurant, err error) {
	return r.getWhere(func(restaurant Restaurant) bool { return restaurant.PublicID == publicID })
}

func (r *FakeRepository) CreateCategory(ctx context.Context, input CreateCategoryInput) (category Category, err error) {
	if r.ReturnError {
		return category, fmt.Errorf("could not create category %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	category = Category{
		ID:           CategoryID(len(r.Categories) + 1),
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Slug:         input.Slug,
		ParentID:     input.ParentID,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    input.CreatedAt,
		UpdatedAt:    input.CreatedAt,
	}
	r.Categories = append(r.Categories, category)
	return category, nil
}

func (r *FakeRepository) CategorySlugExists(ctx context.Context, restaurantID ID, slug string) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, category := range r.Categories {
		if category.RestaurantID == restaurantID && category.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeRepository) ListCategories(ctx context.Context, restaurantID ID) ([]Category, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list categories")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	categories := make([]Category, 0)
	for _, category := range r.Categories {
		if category.RestaurantID == restaurantID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (r *FakeRepository) CreateDish(ctx context.Context, input CreateDishInput) (dish Dish, err error) {
	if r.ReturnError {
		return dish, fmt.Errorf("could not create dish %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	dish = Dish{
		ID:           DishID(len(r.Dishes) + 1),
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		SpiceLevel:   input.SpiceLevel,
		IsAvailable:  input.IsAvailable,
		SortOrder:    input.SortOrder,
		CreatedAt:    input.CreatedAt,
		UpdatedAt:    input.CreatedAt,
	}
	r.Dishes = append(r.Dishes, dish)
	for ix, categoryID := range input.CategoryIDs {
		r.Links = append(r.Links, DishLink{CategoryID: categoryID, OrderIndex: int32(ix), Dish: dish})
	}
	return dish, nil
}

func (r *FakeRepository) ListAvailableDishLinks(ctx context.Context, restaurantID ID) ([]DishLink, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list dishes")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	links := make([]DishLink, 0)
	for _, link := range r.Links {
		if link.Dish.RestaurantID == restaurantID && link.Dish.IsAvailable {
			links = append(links, link)
		}
	}
	return links, nil
}

func (r *FakeRepository) listWhere(match func(Restaurant) bool) []Restaurant {
	r.lock.Lock()
	defer r.lock.Unlock()
	restaurants := make([]Restaurant, 0)
	for _, restaurant := range r.Restaurants {
		if match(restaurant) {
			restaurants = append(restaurants, restaurant)
		}
	}
	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].CreatedAt.After(restaurants[j].CreatedAt)
	})
	return restaurants
}

func (r *FakeRepository) getWhere(match func(Restaurant) bool) (restaurant Restaurant, err error) {
	if r.ReturnError {
		return restaurant, fmt.Errorf("could not get restaurant")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, restaurant := range r.Restaurants {
		if match(restaurant) {
			return restaurant, nil
		}
	}
	return restaurant, ErrRestaurantDoesNotExist
}
