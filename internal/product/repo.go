// Package product holds the immutable catalog, its versioned filters and
// the sources it can be loaded from.
package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrUnknownSource = errors.New("unknown catalog source")
)

// Source populates the catalog once at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// Seed returns the built-in demo catalog. Ids 9 and 8 are listed out of
// order on purpose; output order always follows this slice.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "MacBook Pro", Category: "electronics", Price: NewPrice(2399), InStock: true},
		{ID: 2, Name: "Gaming Chair", Category: "furniture", Price: NewPrice(450), InStock: false},
		{ID: 3, Name: "Wireless Mouse", Category: "electronics", Price: NewPrice(85), InStock: true},
		{ID: 4, Name: "Standing Desk", Category: "furniture", Price: NewPrice(599), InStock: true},
		{ID: 5, Name: "iPhone 15", Category: "electronics", Price: NewPrice(999), InStock: false},
		{ID: 6, Name: "Coffee Table", Category: "furniture", Price: NewPrice(249), InStock: true},
		{ID: 7, Name: "Gaming Laptop", Category: "electronics", Price: NewPrice(1599), InStock: false},
		{ID: 9, Name: "Macbook Pro Laptop", Category: "electronics", Price: NewPrice(2500), InStock: true},
		{ID: 8, Name: "Office Lamp", Category: "furniture", Price: NewPrice(89), InStock: false},
	}
}

type StaticSource struct{}

func (StaticSource) Load(context.Context) ([]Product, error) { return Seed(), nil }

// PGSource reads the catalog from Postgres. It never writes.
type PGSource struct{ db *pgxpool.Pool }

func NewPGSource(db *pgxpool.Pool) *PGSource { return &PGSource{db: db} }

func (s *PGSource) Load(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT id, name, category, price::text, in_stock
		FROM catalog_products
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// rowScanner is the subset of pgx.Rows that scanProducts reads.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// scanProducts reads id, name, category, price text and in_stock columns.
func scanProducts(rows rowScanner) ([]Product, error) {
	var out []Product
	for rows.Next() {
		var (
			p     Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &p.InStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("product %d price %q: %w", p.ID, price, err)
		}
		p.Price = Price{d}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// Load builds a catalog from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(items), nil
}
