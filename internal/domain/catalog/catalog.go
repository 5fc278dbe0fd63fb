// Package catalog models the store's reference data: promotions, priced
// stock pools, and products assembled from raw catalog rows. The structure
// is built once per session; only pool quantities mutate afterwards.
package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Row is one raw catalog line: a priced stock batch for a product, optionally
// tied to a promotion. Rows sharing a name are merged into one Product.
type Row struct {
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Promotion string // empty when the row is regular stock
}

// UnknownPromotionError indicates a catalog row references a promotion that
// was never defined.
type UnknownPromotionError struct {
	Product   string
	Promotion string
}

func (e *UnknownPromotionError) Error() string {
	return fmt.Sprintf("product %s references unknown promotion %s", e.Product, e.Promotion)
}

// Catalog is the set of products keyed by unique name. Iteration order
// follows first appearance in the source rows.
type Catalog struct {
	byName map[string]*Product
	names  []string
}

// New groups rows by product name and builds the catalog. Construction fails
// when a row references an unknown promotion, when two rows supply the same
// pool kind for one product, or when a product violates the pool invariants.
func New(rows []Row, promotions []*Promotion) (*Catalog, error) {
	promosByName := make(map[string]*Promotion, len(promotions))
	for _, p := range promotions {
		promosByName[p.Name] = p
	}

	builders := make(map[string]*productBuilder, len(rows))
	var order []string
	for _, row := range rows {
		b, ok := builders[row.Name]
		if !ok {
			var err error
			b, err = newProductBuilder(row.Name)
			if err != nil {
				return nil, err
			}
			builders[row.Name] = b
			order = append(order, row.Name)
		}

		pool, err := NewPool(row.Price, row.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "product %s", row.Name)
		}

		if row.Promotion == "" {
			if err := b.setNormal(pool); err != nil {
				return nil, err
			}
			continue
		}

		promo, ok := promosByName[row.Promotion]
		if !ok {
			return nil, &UnknownPromotionError{Product: row.Name, Promotion: row.Promotion}
		}
		if err := b.setPromo(pool, promo); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		byName: make(map[string]*Product, len(builders)),
		names:  order,
	}
	for _, name := range order {
		p, err := builders[name].build()
		if err != nil {
			return nil, err
		}
		c.byName[name] = p
	}
	return c, nil
}

// Find returns the product with the given name.
func (c *Catalog) Find(name string) (*Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Products returns all products in source order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.byName)
}
