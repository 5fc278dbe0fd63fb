package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for stock pools.
var (
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrStockUnderflow indicates a reduction that would drive a pool
	// negative. After order validation has passed this is a logic defect,
	// not a user error.
	ErrStockUnderflow = errors.New("stock reduction exceeds pool quantity")
)

// Pool is a priced inventory bucket. The quantity is mutated only by the
// inventory-reduction stage of the order pipeline.
type Pool struct {
	Price    decimal.Decimal
	Quantity int
}

// NewPool validates and constructs a Pool.
func NewPool(price decimal.Decimal, quantity int) (*Pool, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &Pool{Price: price, Quantity: quantity}, nil
}

// Reduce removes n units from the pool. It fails with ErrStockUnderflow when
// n exceeds the remaining quantity; the pool is left unchanged on failure.
func (p *Pool) Reduce(n int) error {
	if n > p.Quantity {
		return errors.Wrapf(ErrStockUnderflow, "have %d, need %d", p.Quantity, n)
	}
	p.Quantity -= n
	return nil
}
