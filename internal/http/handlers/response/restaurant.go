package response

import (
	"digitalmenu/internal/core/domain/restaurant"
	"time"
)

type Restaurant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Slug      string    `json:"slug"`
	PublicID  string    `json:"public_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Restaurant) FromDomainRestaurant(dr restaurant.Restaurant) {
	r.ID = int64(dr.ID)
	r.Name = dr.Name
	r.Location = dr.Location
	r.Slug = dr.Slug
	r.PublicID = string(dr.PublicID)
	r.CreatedAt = dr.CreatedAt
	r.UpdatedAt = dr.UpdatedAt
}

func FromDomainRestaurants(restaurants []restaurant.Restaurant) []Restaurant {
	items := make([]Restaurant, len(restaurants))
	for ix, r := range restaurants {
		items[ix].FromDomainRestaurant(r)
	}
	return items
}
