package catalog

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for product construction.
var (
	ErrBlankProductName = errors.New("product name must not be blank")
	ErrNoStock          = errors.New("product needs a normal or promotional stock pool")
	ErrNoPromotion      = errors.New("promotional stock requires a promotion")
	ErrDuplicatePool    = errors.New("duplicate stock pool for product")
)

// Product is a catalog entry with up to two stock pools. The structure is
// immutable after construction; only pool quantities change over time.
type Product struct {
	Name      string
	Normal    *Pool
	Promo     *Pool
	Promotion *Promotion
}

// productBuilder accumulates pools for one product while catalog rows are
// grouped, enforcing the single-pool-per-kind rule.
type productBuilder struct {
	name      string
	normal    *Pool
	promo     *Pool
	promotion *Promotion
}

func newProductBuilder(name string) (*productBuilder, error) {
	if name == "" {
		return nil, ErrBlankProductName
	}
	return &productBuilder{name: name}, nil
}

func (b *productBuilder) setNormal(pool *Pool) error {
	if b.normal != nil {
		return errors.Wrapf(ErrDuplicatePool, "normal pool of %s", b.name)
	}
	b.normal = pool
	return nil
}

func (b *productBuilder) setPromo(pool *Pool, promo *Promotion) error {
	if b.promo != nil {
		return errors.Wrapf(ErrDuplicatePool, "promotional pool of %s", b.name)
	}
	b.promo = pool
	b.promotion = promo
	return nil
}

func (b *productBuilder) build() (*Product, error) {
	if b.normal == nil && b.promo == nil {
		return nil, errors.Wrapf(ErrNoStock, "product %s", b.name)
	}
	if b.promo != nil && b.promotion == nil {
		return nil, errors.Wrapf(ErrNoPromotion, "product %s", b.name)
	}
	return &Product{
		Name:      b.name,
		Normal:    b.normal,
		Promo:     b.promo,
		Promotion: b.promotion,
	}, nil
}

// IsPromotional reports whether the product's promotion applies on the given
// date. A product without a promotional pool is never promotional.
func (p *Product) IsPromotional(date time.Time) bool {
	return p.Promo != nil && p.Promotion.ActiveOn(date)
}

// TotalStock returns the sellable quantity on the given date: the normal pool
// plus the promotional pool when the promotion is active.
func (p *Product) TotalStock(date time.Time) int {
	total := 0
	if p.Normal != nil {
		total += p.Normal.Quantity
	}
	if p.IsPromotional(date) {
		total += p.Promo.Quantity
	}
	return total
}

// UnitPrice returns the billing price per unit. The normal pool price is the
// price of record even for units drawn from the promotional pool; only a
// product without any normal pool falls back to the promotional price.
func (p *Product) UnitPrice() decimal.Decimal {
	if p.Normal != nil {
		return p.Normal.Price
	}
	return p.Promo.Price
}

// NormalQuantity returns the normal pool quantity, zero when absent.
func (p *Product) NormalQuantity() int {
	if p.Normal == nil {
		return 0
	}
	return p.Normal.Quantity
}

// PromoQuantity returns the promotional pool quantity, zero when absent.
func (p *Product) PromoQuantity() int {
	if p.Promo == nil {
		return 0
	}
	return p.Promo.Quantity
}
