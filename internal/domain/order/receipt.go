package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reduction records how one product's order was satisfied: units taken from
// the normal pool, units taken from the promotional pool, and free units
// granted by completed promotion sets.
type Reduction struct {
	NormalUsed int
	PromoUsed  int
	FreeItems  int
}

// Line is one billed receipt entry.
type Line struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// FreeLine is one granted-for-free receipt entry.
type FreeLine struct {
	Name     string
	Quantity int
}

// Receipt is the final outcome of an order: billed lines, free promotional
// lines, and the price summary. Lines follow the order's request order.
type Receipt struct {
	ID                 string
	Date               time.Time
	Lines              []Line
	Free               []FreeLine
	TotalQuantity      int
	Total              decimal.Decimal
	PromotionDiscount  decimal.Decimal
	MembershipDiscount decimal.Decimal
}

// FinalTotal is the amount due: total minus promotion and membership discounts.
func (r *Receipt) FinalTotal() decimal.Decimal {
	return r.Total.Sub(r.PromotionDiscount).Sub(r.MembershipDiscount)
}
