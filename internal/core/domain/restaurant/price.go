package restaurant

import (
	"fmt"
	"math"
)

const MAX_PRICE = Price(1_000_000 * 100)

// Price is an amount in cents.
type Price int64

func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Price(0), ErrInvalidPrice
	}
	p := Price(math.Round(amount * 100))
	if p > MAX_PRICE {
		return Price(0), ErrInvalidPrice
	}
	return p, nil
}

func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}
