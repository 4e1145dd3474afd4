package publicid

import (
	"digitalmenu/internal/core/domain/restaurant"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GeneratePublicID() restaurant.PublicID {
	return restaurant.PublicID(uuid.New().String())
}
