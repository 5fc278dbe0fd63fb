package order

// ValidateStock rejects the order when any requested quantity exceeds the
// product's sellable stock on the order date. It runs before any
// confirmation stage, so a failure aborts the order with nothing to undo.
func ValidateStock(octx *Context) error {
	for _, p := range octx.Products() {
		requested := octx.Quantity(p)
		available := p.TotalStock(octx.Date)
		if requested > available {
			return &InsufficientStockError{
				Name:      p.Name,
				Requested: requested,
				Available: available,
			}
		}
	}
	return nil
}
