package order

import "github.com/minimart/checkout/internal/domain/catalog"

// OfferPromotionalItems returns the stage that offers free units for
// promotional products whose requested quantity is short of completing one
// more buy-get set. The offer fires only when the shortfall exists and the
// promotional pool can cover the grown quantity; accepted units merge into
// the requested quantity.
func OfferPromotionalItems(confirm ItemConfirm) Stage {
	return func(octx *Context) error {
		for _, p := range octx.Products() {
			if !p.IsPromotional(octx.Date) {
				continue
			}
			addition := promotionalAddition(p, octx.Quantity(p))
			if addition > 0 && confirm(p.Name, addition) {
				octx.AddQuantity(p, addition)
			}
		}
		return nil
	}
}

// promotionalAddition computes how many free units would complete the next
// promotion set, or zero when no offer applies. A remainder below the buy
// quantity yields no offer; that includes remainder zero, where the order
// already consists of exact sets.
func promotionalAddition(p *catalog.Product, quantity int) int {
	setSize := p.Promotion.SetSize()
	remainder := quantity % setSize
	if remainder < p.Promotion.Buy {
		return 0
	}

	addition := setSize - remainder
	if quantity+addition > p.Promo.Quantity {
		return 0
	}
	return addition
}
