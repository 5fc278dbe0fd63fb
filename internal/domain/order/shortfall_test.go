package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimart/checkout/internal/domain/catalog"
)

func TestResolvePromotionalShortfall(t *testing.T) {
	// buy 2 get 1: set size 3.
	tests := []struct {
		name         string
		quantity     int
		promoStock   int
		answer       bool
		wantPrompted bool
		wantExcess   int
		wantQuantity int
		wantRemoved  bool
	}{
		{
			name:     "order within promo stock needs no resolution",
			quantity: 9, promoStock: 9,
			wantPrompted: false, wantQuantity: 9,
		},
		{
			name:     "order past full sets but within stock needs no resolution",
			quantity: 10, promoStock: 10,
			wantPrompted: false, wantQuantity: 10,
		},
		{
			name:     "accepted excess keeps the full quantity",
			quantity: 12, promoStock: 9, answer: true,
			wantPrompted: true, wantExcess: 3, wantQuantity: 12,
		},
		{
			name:     "declined excess clamps to complete sets",
			quantity: 12, promoStock: 9, answer: false,
			wantPrompted: true, wantExcess: 3, wantQuantity: 9,
		},
		{
			name:     "declined excess with no complete set removes the item",
			quantity: 3, promoStock: 2, answer: false,
			wantPrompted: true, wantExcess: 3, wantRemoved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := buildCatalog(t, []catalog.Row{
				{Name: "cola", Price: money(1000), Quantity: tt.promoStock, Promotion: "soda2+1"},
				{Name: "cola", Price: money(1000), Quantity: 10},
			}, buyTwoGetOne(t))
			octx := newContext(t, cat, Item{Name: "cola", Quantity: tt.quantity})

			answer := &itemAnswer{answer: tt.answer}
			require.NoError(t, ResolvePromotionalShortfall(answer.confirm)(octx))

			if !tt.wantPrompted {
				assert.Empty(t, answer.calls)
			} else {
				require.Len(t, answer.calls, 1)
				assert.Equal(t, promptCall{name: "cola", quantity: tt.wantExcess}, answer.calls[0])
			}

			if tt.wantRemoved {
				assert.Empty(t, octx.Products())
				return
			}
			assert.Equal(t, tt.wantQuantity, octx.Quantity(mustFind(t, cat, "cola")))
		})
	}
}
