package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/minimart/checkout/internal/domain/catalog"
)

var orderDate = time.Date(2026, 6, 15, 13, 30, 0, 0, time.UTC)

func money(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func buyTwoGetOne(t *testing.T) *catalog.Promotion {
	t.Helper()
	promo, err := catalog.NewPromotion("soda2+1", 2, 1,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return promo
}

func expiredPromotion(t *testing.T) *catalog.Promotion {
	t.Helper()
	promo, err := catalog.NewPromotion("last-winter", 2, 1,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return promo
}

func buildCatalog(t *testing.T, rows []catalog.Row, promos ...*catalog.Promotion) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(rows, promos)
	require.NoError(t, err)
	return cat
}

// colaCatalog is the canonical fixture: cola with a normal pool (1000 x 10)
// and a promotional pool (1000 x 10) under an active buy-2-get-1, plus
// plain water (500 x 10).
func colaCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return buildCatalog(t, []catalog.Row{
		{Name: "cola", Price: money(1000), Quantity: 10, Promotion: "soda2+1"},
		{Name: "cola", Price: money(1000), Quantity: 10},
		{Name: "water", Price: money(500), Quantity: 10},
	}, buyTwoGetOne(t))
}

func newContext(t *testing.T, cat *catalog.Catalog, items ...Item) *Context {
	t.Helper()
	octx, err := NewContext(orderDate, items, cat)
	require.NoError(t, err)
	return octx
}

func mustFind(t *testing.T, cat *catalog.Catalog, name string) *catalog.Product {
	t.Helper()
	p, ok := cat.Find(name)
	require.True(t, ok)
	return p
}

// itemAnswer scripts a per-item confirmation and records the prompts it got.
type itemAnswer struct {
	answer bool
	calls  []promptCall
}

type promptCall struct {
	name     string
	quantity int
}

func (a *itemAnswer) confirm(name string, quantity int) bool {
	a.calls = append(a.calls, promptCall{name: name, quantity: quantity})
	return a.answer
}

func accept() Confirm  { return func() bool { return true } }
func decline() Confirm { return func() bool { return false } }
