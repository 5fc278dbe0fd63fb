package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPromotions(t *testing.T) []*Promotion {
	t.Helper()
	promo, err := NewPromotion("soda2+1", 2, 1, date(2026, 1, 1), date(2026, 12, 31))
	require.NoError(t, err)
	return []*Promotion{promo}
}

func TestCatalogNew(t *testing.T) {
	price := decimal.NewFromInt(1000)

	t.Run("rows sharing a name merge into one product", func(t *testing.T) {
		cat, err := New([]Row{
			{Name: "cola", Price: price, Quantity: 10, Promotion: "soda2+1"},
			{Name: "cola", Price: price, Quantity: 7},
			{Name: "water", Price: decimal.NewFromInt(500), Quantity: 5},
		}, testPromotions(t))
		require.NoError(t, err)
		require.Equal(t, 2, cat.Len())

		cola, ok := cat.Find("cola")
		require.True(t, ok)
		assert.Equal(t, 7, cola.NormalQuantity())
		assert.Equal(t, 10, cola.PromoQuantity())
		require.NotNil(t, cola.Promotion)
		assert.Equal(t, "soda2+1", cola.Promotion.Name)

		water, ok := cat.Find("water")
		require.True(t, ok)
		assert.Nil(t, water.Promo)
		assert.Nil(t, water.Promotion)
	})

	t.Run("products keep source order", func(t *testing.T) {
		cat, err := New([]Row{
			{Name: "b", Price: price, Quantity: 1},
			{Name: "a", Price: price, Quantity: 1},
		}, nil)
		require.NoError(t, err)

		products := cat.Products()
		require.Len(t, products, 2)
		assert.Equal(t, "b", products[0].Name)
		assert.Equal(t, "a", products[1].Name)
	})

	t.Run("unknown promotion reference", func(t *testing.T) {
		_, err := New([]Row{
			{Name: "cola", Price: price, Quantity: 10, Promotion: "bogus"},
		}, testPromotions(t))

		var unknownErr *UnknownPromotionError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "bogus", unknownErr.Promotion)
	})

	t.Run("duplicate normal pool", func(t *testing.T) {
		_, err := New([]Row{
			{Name: "cola", Price: price, Quantity: 10},
			{Name: "cola", Price: price, Quantity: 5},
		}, nil)
		require.ErrorIs(t, err, ErrDuplicatePool)
	})

	t.Run("duplicate promotional pool", func(t *testing.T) {
		_, err := New([]Row{
			{Name: "cola", Price: price, Quantity: 10, Promotion: "soda2+1"},
			{Name: "cola", Price: price, Quantity: 5, Promotion: "soda2+1"},
		}, testPromotions(t))
		require.ErrorIs(t, err, ErrDuplicatePool)
	})

	t.Run("blank product name", func(t *testing.T) {
		_, err := New([]Row{{Name: "", Price: price, Quantity: 1}}, nil)
		require.ErrorIs(t, err, ErrBlankProductName)
	})

	t.Run("negative row price", func(t *testing.T) {
		_, err := New([]Row{{Name: "cola", Price: decimal.NewFromInt(-5), Quantity: 1}}, nil)
		require.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestProductStock(t *testing.T) {
	price := decimal.NewFromInt(1000)
	cat, err := New([]Row{
		{Name: "cola", Price: price, Quantity: 10, Promotion: "soda2+1"},
		{Name: "cola", Price: price, Quantity: 7},
	}, testPromotions(t))
	require.NoError(t, err)
	cola, _ := cat.Find("cola")

	t.Run("promotion active", func(t *testing.T) {
		on := date(2026, 6, 15)
		assert.True(t, cola.IsPromotional(on))
		assert.Equal(t, 17, cola.TotalStock(on))
	})

	t.Run("promotion expired", func(t *testing.T) {
		on := date(2027, 1, 1)
		assert.False(t, cola.IsPromotional(on))
		assert.Equal(t, 7, cola.TotalStock(on))
	})

	t.Run("unit price is the normal pool price", func(t *testing.T) {
		assert.True(t, cola.UnitPrice().Equal(price))
	})
}
