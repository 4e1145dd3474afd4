package restaurant

import (
	"errors"
	"fmt"
)

var (
	ErrRestaurantDoesNotExist = errors.New("restaurant does not exist")
	ErrSlugAlreadyExists      = errors.New("slug already exists")
)

var (
	ErrInvalidRestaurantName = errors.New("restaurant name must be between 2 and 120 characters")
	ErrInvalidLocation       = errors.New("location must be between 2 and 120 characters")
	ErrInvalidCategoryName   = errors.New("category name must be between 2 and 80 characters")
	ErrInvalidDishName       = errors.New("dish name must be between 2 and 120 characters")
	ErrInvalidDescription    = errors.New("description must not exceed 600 characters")
	ErrInvalidPrice          = errors.New("price must be between 0 and 1000000")
	ErrInvalidSpiceLevel     = errors.New("spice level must be: none, mild, medium, hot, extra hot, or a number 0-5")
	ErrDishCategoriesNotSet  = errors.New("at least one category is required")
	ErrDuplicateCategoryName = errors.New("category names must be unique within a menu")
	ErrCategoryTooDeep       = errors.New("categories can be nested only one level deep")
)

type UnknownCategoryError struct {
	Dish     string
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("dish %q refers to unknown category %q", e.Dish, e.Category)
}
