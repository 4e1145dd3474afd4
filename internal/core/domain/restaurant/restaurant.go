package restaurant

import (
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"time"
)

type ID int64

type PublicID string

type CategoryID int64

type DishID int64

type Restaurant struct {
	ID        ID
	OwnerID   user.ID
	Name      string
	Location  string
	Slug      string
	PublicID  PublicID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID           CategoryID
	RestaurantID ID
	Name         string
	Slug         string
	ParentID     c.Optional[CategoryID]
	DisplayOrder int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Category) IsTopLevel() bool {
	return !c.ParentID.IsPresent
}

type Dish struct {
	ID           DishID
	RestaurantID ID
	Name         string
	Description  c.Optional[string]
	Price        c.Optional[Price]
	ImageURL     c.Optional[string]
	SpiceLevel   c.Optional[string]
	IsAvailable  bool
	SortOrder    int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DishLink places a dish in a category at a given position.
type DishLink struct {
	CategoryID CategoryID
	OrderIndex int32
	Dish       Dish
}

type SlugGenerator interface {
	// Slugify returns a lowercase ASCII slug, empty when nothing usable is left.
	Slugify(name string) string
	RandomSlug(length int) string
}

type PublicIDGenerator interface {
	GeneratePublicID() PublicID
}
