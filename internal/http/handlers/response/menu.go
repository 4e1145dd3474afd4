package response

import (
	"digitalmenu/internal/core/domain/restaurant"
)

type Dish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	ImageURL    *string `json:"image_url"`
	SpiceLevel  *string `json:"spice_level"`
}

func (d *Dish) FromDomainDish(dd restaurant.Dish) {
	d.ID = int64(dd.ID)
	d.Name = dd.Name
	if dd.Description.IsPresent {
		d.Description = &dd.Description.Value
	}
	if dd.Price.IsPresent {
		price := dd.Price.Value.String()
		d.Price = &price
	}
	if dd.ImageURL.IsPresent {
		d.ImageURL = &dd.ImageURL.Value
	}
	if dd.SpiceLevel.IsPresent {
		d.SpiceLevel = &dd.SpiceLevel.Value
	}
}

type MenuCategory struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	Dishes   []Dish         `json:"dishes"`
	Children []MenuCategory `json:"children"`
}

func (c *MenuCategory) FromDomainMenuCategory(dc restaurant.MenuCategory) {
	c.ID = int64(dc.Category.ID)
	c.Name = dc.Category.Name
	c.Slug = dc.Category.Slug
	c.Dishes = make([]Dish, len(dc.Dishes))
	for ix, dish := range dc.Dishes {
		c.Dishes[ix].FromDomainDish(dish)
	}
	c.Children = make([]MenuCategory, len(dc.Children))
	for ix, child := range dc.Children {
		c.Children[ix].FromDomainMenuCategory(child)
	}
}

type Menu struct {
	Restaurant Restaurant     `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
}

func (m *Menu) FromDomainMenu(dm restaurant.Menu) {
	m.Restaurant.FromDomainRestaurant(dm.Restaurant)
	m.Categories = make([]MenuCategory, len(dm.Categories))
	for ix, category := range dm.Categories {
		m.Categories[ix].FromDomainMenuCategory(category)
	}
}
