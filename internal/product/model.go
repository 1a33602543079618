package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxPriceExponent bounds the decimal exponent a decoded price may carry.
const MaxPriceExponent = 64

var ErrInvalidPrice = errors.New("invalid price")

// Price is a decimal amount that marshals as a bare JSON number.
type Price struct {
	decimal.Decimal
}

func NewPrice(v int64) Price { return Price{decimal.NewFromInt(v)} }

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts bare JSON numbers only.
func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return fmt.Errorf("%w: %s is a string, want a number", ErrInvalidPrice, b)
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	if exp := d.Exponent(); exp > MaxPriceExponent || exp < -MaxPriceExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidPrice, exp)
	}
	p.Decimal = d
	return nil
}

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    Price  `json:"price" swaggertype:"number"`
	InStock  bool   `json:"in_stock"`
}

// PublicProduct is a Product without inventory information.
// swagger:model
type PublicProduct struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    Price  `json:"price" swaggertype:"number"`
}

func (p Product) Public() PublicProduct {
	return PublicProduct{ID: p.ID, Name: p.Name, Category: p.Category, Price: p.Price}
}

// PriceRange is an inclusive interval. A nil bound does not constrain.
type PriceRange struct {
	Min *Price `json:"min" swaggertype:"number"`
	Max *Price `json:"max" swaggertype:"number"`
}

func (r PriceRange) Contains(p Price) bool {
	lo := decimal.Zero
	if r.Min != nil {
		lo = r.Min.Decimal
	}
	if p.LessThan(lo) {
		return false
	}
	return r.Max == nil || p.LessThanOrEqual(r.Max.Decimal)
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: invalid character 'x' looking for beginning of value
	Error string `json:"error"`
}
