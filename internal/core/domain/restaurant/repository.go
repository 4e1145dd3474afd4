package restaurant

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	OwnerID   user.ID
	Name      string
	Location  string
	Slug      string
	PublicID  PublicID
	CreatedAt time.Time
}

type CreateCategoryInput struct {
	RestaurantID ID
	Name         string
	Slug         string
	ParentID     c.Optional[CategoryID]
	DisplayOrder int32
	CreatedAt    time.Time
}

type CreateDishInput struct {
	RestaurantID ID
	Name         string
	Description  c.Optional[string]
	Price        c.Optional[Price]
	ImageURL     c.Optional[string]
	SpiceLevel   c.Optional[string]
	IsAvailable  bool
	SortOrder    int32
	// CategoryIDs are linked in order, the first one gets order index 0.
	CategoryIDs []CategoryID
	CreatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Restaurant, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListAll(ctx context.Context) ([]Restaurant, error)
	ListByOwner(ctx context.Context, ownerID user.ID) ([]Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (Restaurant, error)
	GetByPublicID(ctx context.Context, publicID PublicID) (Restaurant, error)

	CreateCategory(ctx context.Context, input CreateCategoryInput) (Category, error)
	CategorySlugExists(ctx context.Context, restaurantID ID, slug string) (bool, error)
	ListCategories(ctx context.Context, restaurantID ID) ([]Category, error)

	CreateDish(ctx context.Context, input CreateDishInput) (Dish, error)
	// ListAvailableDishLinks returns links of available dishes only.
	ListAvailableDishLinks(ctx context.Context, restaurantID ID) ([]DishLink, error)
}
