package order

import "github.com/shopspring/decimal"

// Membership discount parameters: 30% of the price not already covered by
// promotion sets, capped at 8000.
var (
	membershipRate = decimal.NewFromFloat(0.3)
	membershipCap  = decimal.NewFromInt(8000)
)

// ApplyMembership returns the stage that asks the single global membership
// question and, on acceptance, attaches the discount calculator to the
// context. The discount itself is computed during receipt assembly.
func ApplyMembership(confirm Confirm) Stage {
	return func(octx *Context) error {
		if !confirm() {
			return nil
		}
		octx.SetMembershipDiscount(func(eligible decimal.Decimal) decimal.Decimal {
			discount := eligible.Mul(membershipRate).Truncate(0)
			return decimal.Min(discount, membershipCap)
		})
		return nil
	}
}
