package order

import (
	"github.com/go-faster/errors"

	"github.com/minimart/checkout/internal/domain/catalog"
)

// ReduceInventory commits the finalized order quantities against the catalog
// stock pools and records a Reduction per product. It is the only stage that
// mutates pool state. A pool underflow here means the earlier validation was
// bypassed or broken; the wrapped catalog.ErrStockUnderflow is fatal, not a
// user error.
func ReduceInventory(octx *Context) error {
	for _, p := range octx.Products() {
		quantity := octx.Quantity(p)

		if !p.IsPromotional(octx.Date) {
			if err := p.Normal.Reduce(quantity); err != nil {
				return errors.Wrapf(err, "reduce normal stock of %s", p.Name)
			}
			octx.setReduction(p, Reduction{NormalUsed: quantity})
			continue
		}

		r, err := reducePromotional(p, quantity)
		if err != nil {
			return err
		}
		octx.setReduction(p, r)
	}
	return nil
}

// reducePromotional draws as much as possible from the promotional pool,
// grants free units per completed set, and sends the rest to the normal pool.
func reducePromotional(p *catalog.Product, quantity int) (Reduction, error) {
	promoUse := min(quantity, p.Promo.Quantity)
	fullSets := promoUse / p.Promotion.SetSize()
	free := fullSets * p.Promotion.Get
	remaining := quantity - promoUse

	if promoUse > 0 {
		if err := p.Promo.Reduce(promoUse); err != nil {
			return Reduction{}, errors.Wrapf(err, "reduce promotional stock of %s", p.Name)
		}
	}
	if remaining > 0 {
		if p.Normal == nil {
			return Reduction{}, errors.Wrapf(catalog.ErrStockUnderflow,
				"product %s has no normal stock for %d remaining units", p.Name, remaining)
		}
		if err := p.Normal.Reduce(remaining); err != nil {
			return Reduction{}, errors.Wrapf(err, "reduce normal stock of %s", p.Name)
		}
	}

	return Reduction{
		NormalUsed: remaining,
		PromoUsed:  promoUse,
		FreeItems:  free,
	}, nil
}
