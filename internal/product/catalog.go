package product

import "strings"

// Catalog is a fixed, read-only sequence of products. It is safe for
// concurrent use because nothing mutates it after NewCatalog.
type Catalog struct {
	items []Product
}

func NewCatalog(items []Product) *Catalog {
	return &Catalog{items: append([]Product(nil), items...)}
}

func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of the catalog in insertion order.
func (c *Catalog) Items() []Product {
	return append([]Product(nil), c.items...)
}

// Base keeps products whose name contains query and whose category equals
// category, both case-insensitively. Empty arguments do not filter.
func (c *Catalog) Base(query, category string) []Product {
	q := strings.ToLower(query)
	cat := strings.ToLower(category)

	out := make([]Product, 0, len(c.items))
	for _, p := range c.items {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if cat != "" && strings.ToLower(p.Category) != cat {
			continue
		}
		out = append(out, p)
	}
	return out
}

// V1 is Base with the in-stock field redacted.
func (c *Catalog) V1(query, category string) []PublicProduct {
	base := c.Base(query, category)
	out := make([]PublicProduct, 0, len(base))
	for _, p := range base {
		out = append(out, p.Public())
	}
	return out
}

// V2 narrows V1 to an inclusive price range when one is given.
func (c *Catalog) V2(query, category string, pr *PriceRange) []PublicProduct {
	res := c.V1(query, category)
	if pr == nil {
		return res
	}
	out := make([]PublicProduct, 0, len(res))
	for _, p := range res {
		if pr.Contains(p.Price) {
			out = append(out, p)
		}
	}
	return out
}

// V3 branches from Base, so the in-stock field stays in the output.
func (c *Catalog) V3(query, category string, inStock *bool) []Product {
	res := c.Base(query, category)
	if inStock == nil {
		return res
	}
	out := make([]Product, 0, len(res))
	for _, p := range res {
		if p.InStock == *inStock {
			out = append(out, p)
		}
	}
	return out
}
