package order

// ResolvePromotionalShortfall returns the stage that handles promotional
// products whose requested quantity cannot be fully covered by complete
// promotion sets in the promotional pool. The operator chooses between
// buying the excess at the normal price or dropping it from the order.
func ResolvePromotionalShortfall(confirm ItemConfirm) Stage {
	return func(octx *Context) error {
		for _, p := range octx.Products() {
			if !p.IsPromotional(octx.Date) {
				continue
			}

			quantity := octx.Quantity(p)
			setSize := p.Promotion.SetSize()
			fullSets := p.Promo.Quantity / setSize
			maxPromo := fullSets * setSize

			// Only a true shortfall needs resolving: the order must
			// both overrun the complete sets and exceed the pool.
			if quantity <= maxPromo || p.Promo.Quantity >= quantity {
				continue
			}

			excess := quantity - maxPromo
			if confirm(p.Name, excess) {
				continue // excess draws from normal stock at reduction time
			}
			if maxPromo <= 0 {
				octx.Remove(p)
				continue
			}
			octx.SetQuantity(p, maxPromo)
		}
		return nil
	}
}
