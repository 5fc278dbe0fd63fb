package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pool, err := NewPool(decimal.NewFromInt(1000), 10)
		require.NoError(t, err)
		assert.Equal(t, 10, pool.Quantity)
	})

	t.Run("zero price and quantity allowed", func(t *testing.T) {
		_, err := NewPool(decimal.Zero, 0)
		require.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewPool(decimal.NewFromInt(-1), 10)
		require.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewPool(decimal.NewFromInt(1000), -1)
		require.ErrorIs(t, err, ErrNegativeQuantity)
	})
}

func TestPoolReduce(t *testing.T) {
	pool, err := NewPool(decimal.NewFromInt(1000), 5)
	require.NoError(t, err)

	require.NoError(t, pool.Reduce(3))
	assert.Equal(t, 2, pool.Quantity)

	require.NoError(t, pool.Reduce(2))
	assert.Equal(t, 0, pool.Quantity)

	err = pool.Reduce(1)
	require.ErrorIs(t, err, ErrStockUnderflow)
	assert.Equal(t, 0, pool.Quantity, "failed reduction must not change the pool")
}
