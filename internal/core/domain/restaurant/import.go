package restaurant

import (
	c "digitalmenu/internal/core/domain/common"
	"regexp"
	"strings"
)

const (
	NAME_MIN_LEN          = 2
	NAME_MAX_LEN          = 120
	CATEGORY_NAME_MAX_LEN = 80
	DESCRIPTION_MAX_LEN   = 600
	SPICE_LEVEL_MAX_LEN   = 50

	// Top-level categories and their children.
	MAX_CATEGORY_DEPTH = 2
)

var (
	validSpiceLevels  = []string{"none", "mild", "medium", "hot", "extra hot", ""}
	numericSpiceLevel = regexp.MustCompile(`^[0-5]$`)
)

// MenuImport is a whole restaurant menu loaded by an operator.
type MenuImport struct {
	OwnerEmail c.Email
	Name       string
	Location   string
	Categories []CategoryImport
	Dishes     []DishImport
}

type CategoryImport struct {
	Name         string
	DisplayOrder c.Optional[int32]
	Children     []CategoryImport
}

type DishImport struct {
	Name        string
	Description c.Optional[string]
	Price       c.Optional[Price]
	ImageURL    c.Optional[string]
	SpiceLevel  c.Optional[string]
	IsAvailable c.Optional[bool]
	SortOrder   int32
	// Categories are category names, the first one is the primary category.
	Categories []string
}

// Validate checks field lengths and that every dish refers to known,
// uniquely named categories.
func (m *MenuImport) Validate() error {
	if !hasLength(m.Name, NAME_MIN_LEN, NAME_MAX_LEN) {
		return ErrInvalidRestaurantName
	}
	if !hasLength(m.Location, NAME_MIN_LEN, NAME_MAX_LEN) {
		return ErrInvalidLocation
	}

	names := make(map[string]struct{})
	var walk func(categories []CategoryImport, depth int) error
	walk = func(categories []CategoryImport, depth int) error {
		for _, category := range categories {
			if depth > MAX_CATEGORY_DEPTH {
				return ErrCategoryTooDeep
			}
			if !hasLength(category.Name, NAME_MIN_LEN, CATEGORY_NAME_MAX_LEN) {
				return ErrInvalidCategoryName
			}
			if _, ok := names[category.Name]; ok {
				return ErrDuplicateCategoryName
			}
			names[category.Name] = struct{}{}
			if err := walk(category.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(m.Categories, 1); err != nil {
		return err
	}

	for _, dish := range m.Dishes {
		if err := dish.Validate(); err != nil {
			return err
		}
		for _, name := range dish.Categories {
			if _, ok := names[name]; !ok {
				return &UnknownCategoryError{Dish: dish.Name, Category: name}
			}
		}
	}
	return nil
}

func (d *DishImport) Validate() error {
	if !hasLength(d.Name, NAME_MIN_LEN, NAME_MAX_LEN) {
		return ErrInvalidDishName
	}
	if d.Description.IsPresent && !hasLength(d.Description.Value, 0, DESCRIPTION_MAX_LEN) {
		return ErrInvalidDescription
	}
	if d.Price.IsPresent && (d.Price.Value < 0 || d.Price.Value > MAX_PRICE) {
		return ErrInvalidPrice
	}
	if d.SpiceLevel.IsPresent && !IsValidSpiceLevel(d.SpiceLevel.Value) {
		return ErrInvalidSpiceLevel
	}
	if len(d.Categories) == 0 {
		return ErrDishCategoriesNotSet
	}
	return nil
}

func IsValidSpiceLevel(level string) bool {
	if !hasLength(level, 0, SPICE_LEVEL_MAX_LEN) {
		return false
	}
	lower := strings.ToLower(level)
	for _, valid := range validSpiceLevels {
		if lower == valid {
			return true
		}
	}
	return numericSpiceLevel.MatchString(level)
}

func hasLength(value string, min int, max int) bool {
	l := len([]rune(value))
	return l >= min && l <= max
}
