// Package order implements the checkout pipeline: an order context built
// against the catalog flows through a fixed sequence of stages that offer
// promotional additions, resolve stock shortfalls, apply discounts, commit
// inventory, and assemble the receipt.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minimart/checkout/internal/domain/catalog"
)

// Item is one requested (product name, quantity) pair as produced by the
// order parser.
type Item struct {
	Name     string
	Quantity int
}

// Context is the mutable working state for a single order. It is created at
// order-parse time, threaded through every pipeline stage, and discarded
// once the receipt has been rendered. Products are shared with the catalog
// by reference, never copied.
type Context struct {
	Date    time.Time
	Catalog *catalog.Catalog

	quantities map[string]int
	sequence   []*catalog.Product

	membership func(decimal.Decimal) decimal.Decimal
	reductions map[string]Reduction
	receipt    *Receipt
}

// NewContext resolves each requested item against the catalog and aggregates
// quantities for repeated names. It fails with a ProductNotFoundError or
// InvalidQuantityError before any stage runs.
func NewContext(date time.Time, items []Item, cat *catalog.Catalog) (*Context, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	octx := &Context{
		Date:       date,
		Catalog:    cat,
		quantities: make(map[string]int, len(items)),
		reductions: make(map[string]Reduction),
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, &InvalidQuantityError{Name: item.Name, Quantity: item.Quantity}
		}
		p, ok := cat.Find(item.Name)
		if !ok {
			return nil, &ProductNotFoundError{Name: item.Name}
		}
		if _, seen := octx.quantities[p.Name]; !seen {
			octx.sequence = append(octx.sequence, p)
		}
		octx.quantities[p.Name] += item.Quantity
	}
	return octx, nil
}

// Products returns the ordered products in request order. Stages iterate this
// snapshot so confirmation prompts fire deterministically.
func (c *Context) Products() []*catalog.Product {
	out := make([]*catalog.Product, len(c.sequence))
	copy(out, c.sequence)
	return out
}

// Quantity returns the current requested quantity for a product.
func (c *Context) Quantity(p *catalog.Product) int {
	return c.quantities[p.Name]
}

// AddQuantity merges additional units into a product's requested quantity.
func (c *Context) AddQuantity(p *catalog.Product, n int) {
	c.quantities[p.Name] += n
}

// SetQuantity replaces a product's requested quantity.
func (c *Context) SetQuantity(p *catalog.Product, n int) {
	c.quantities[p.Name] = n
}

// Remove drops a product from the order entirely.
func (c *Context) Remove(p *catalog.Product) {
	delete(c.quantities, p.Name)
	for i, q := range c.sequence {
		if q.Name == p.Name {
			c.sequence = append(c.sequence[:i], c.sequence[i+1:]...)
			break
		}
	}
}

// SetMembershipDiscount attaches the membership discount calculator.
func (c *Context) SetMembershipDiscount(fn func(decimal.Decimal) decimal.Decimal) {
	c.membership = fn
}

// MembershipDiscount applies the attached calculator to the eligible price,
// or returns zero when no membership discount was accepted.
func (c *Context) MembershipDiscount(eligible decimal.Decimal) decimal.Decimal {
	if c.membership == nil {
		return decimal.Zero
	}
	return c.membership(eligible)
}

// MembershipApplied reports whether the membership stage attached a
// discount calculator.
func (c *Context) MembershipApplied() bool {
	return c.membership != nil
}

// Reduction returns the stock-reduction result recorded for a product.
func (c *Context) Reduction(p *catalog.Product) Reduction {
	return c.reductions[p.Name]
}

func (c *Context) setReduction(p *catalog.Product, r Reduction) {
	c.reductions[p.Name] = r
}

// Receipt returns the receipt assembled by the final stage, or nil while the
// pipeline is still running.
func (c *Context) Receipt() *Receipt {
	return c.receipt
}
