package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minimart/checkout/internal/domain/catalog"
)

// BuildReceipt assembles the receipt from the finalized quantities and the
// reductions recorded by the inventory stage, and attaches it to the
// context. It is the terminal stage.
func BuildReceipt(octx *Context) error {
	r := &Receipt{
		ID:    uuid.New().String(),
		Date:  octx.Date,
		Total: decimal.Zero,
	}

	eligible := decimal.Zero
	for _, p := range octx.Products() {
		quantity := octx.Quantity(p)
		lineTotal := p.UnitPrice().Mul(decimal.NewFromInt(int64(quantity)))

		r.Lines = append(r.Lines, Line{
			Name:     p.Name,
			Quantity: quantity,
			Total:    lineTotal,
		})
		r.TotalQuantity += quantity
		r.Total = r.Total.Add(lineTotal)

		reduction := octx.Reduction(p)
		if p.Promotion != nil {
			free := decimal.NewFromInt(int64(reduction.FreeItems))
			r.PromotionDiscount = r.PromotionDiscount.Add(p.UnitPrice().Mul(free))
			if reduction.FreeItems > 0 {
				r.Free = append(r.Free, FreeLine{Name: p.Name, Quantity: reduction.FreeItems})
			}
		}
		eligible = eligible.Add(membershipEligible(p, quantity, reduction))
	}

	r.MembershipDiscount = octx.MembershipDiscount(eligible)
	octx.receipt = r
	return nil
}

// membershipEligible returns the part of a product's line price that the
// membership discount applies to: everything not already inside completed
// promotion sets.
func membershipEligible(p *catalog.Product, quantity int, reduction Reduction) decimal.Decimal {
	remaining := quantity
	if p.Promotion != nil {
		setSize := p.Promotion.SetSize()
		inSets := (reduction.PromoUsed / setSize) * setSize
		remaining = quantity - inSets
	}
	return p.UnitPrice().Mul(decimal.NewFromInt(int64(remaining)))
}
