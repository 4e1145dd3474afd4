// Package menufile reads restaurant menus written in YAML by operators.
package menufile

import (
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/restaurant"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type menuFile struct {
	OwnerEmail string         `yaml:"owner_email"`
	Name       string         `yaml:"name"`
	Location   string         `yaml:"location"`
	Categories []categoryFile `yaml:"categories"`
	Dishes     []dishFile     `yaml:"dishes"`
}

type categoryFile struct {
	Name         string         `yaml:"name"`
	DisplayOrder *int32         `yaml:"display_order"`
	Children     []categoryFile `yaml:"children"`
}

type dishFile struct {
	Name        string   `yaml:"name"`
	Description *string  `yaml:"description"`
	Price       *float64 `yaml:"price"`
	ImageURL    *string  `yaml:"image_url"`
	SpiceLevel  *string  `yaml:"spice_level"`
	IsAvailable *bool    `yaml:"is_available"`
	SortOrder   int32    `yaml:"sort_order"`
	Categories  []string `yaml:"categories"`
}

func ParseFile(path string) (restaurant.MenuImport, error) {
	f, err := os.Open(path)
	if err != nil {
		return restaurant.MenuImport{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a menu, rejecting unknown keys. Field contents are
// validated later by the import.
func Parse(r io.Reader) (m restaurant.MenuImport, err error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw menuFile
	if err := decoder.Decode(&raw); err != nil {
		return m, fmt.Errorf("could not decode menu file: %w", err)
	}

	m = restaurant.MenuImport{
		OwnerEmail: c.NewEmail(raw.OwnerEmail),
		Name:       raw.Name,
		Location:   raw.Location,
		Categories: decodeCategories(raw.Categories),
		Dishes:     make([]restaurant.DishImport, 0, len(raw.Dishes)),
	}
	for _, dish := range raw.Dishes {
		decoded, err := decodeDish(dish)
		if err != nil {
			return m, err
		}
		m.Dishes = append(m.Dishes, decoded)
	}
	return m, nil
}

func decodeCategories(categories []categoryFile) []restaurant.CategoryImport {
	decoded := make([]restaurant.CategoryImport, 0, len(categories))
	for _, category := range categories {
		decoded = append(decoded, restaurant.CategoryImport{
			Name:         category.Name,
			DisplayOrder: optional(category.DisplayOrder),
			Children:     decodeCategories(category.Children),
		})
	}
	return decoded
}

func decodeDish(dish dishFile) (restaurant.DishImport, error) {
	decoded := restaurant.DishImport{
		Name:        dish.Name,
		Description: optional(dish.Description),
		ImageURL:    optional(dish.ImageURL),
		SpiceLevel:  optional(dish.SpiceLevel),
		IsAvailable: optional(dish.IsAvailable),
		SortOrder:   dish.SortOrder,
		Categories:  dish.Categories,
	}
	if dish.Price != nil {
		price, err := restaurant.NewPrice(*dish.Price)
		if err != nil {
			return decoded, fmt.Errorf("dish %q: %w", dish.Name, err)
		}
		decoded.Price = c.NewOptional(price, true)
	}
	return decoded, nil
}

func optional[T any](value *T) c.Optional[T] {
	if value == nil {
		return c.Optional[T]{}
	}
	return c.NewOptional(*value, true)
}
