package receiptlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimart/checkout/internal/domain/order"
)

func testReceipt() *order.Receipt {
	return &order.Receipt{
		ID:   "test-receipt",
		Date: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Lines: []order.Line{
			{Name: "cola", Quantity: 6, Total: decimal.NewFromInt(6000)},
		},
		Free:               []order.FreeLine{{Name: "cola", Quantity: 2}},
		TotalQuantity:      6,
		Total:              decimal.NewFromInt(6000),
		PromotionDiscount:  decimal.NewFromInt(2000),
		MembershipDiscount: decimal.Zero,
	}
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipts.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Append(testReceipt()))
	require.NoError(t, log.Append(testReceipt()))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "one JSON object per receipt")

	var decoded struct {
		ID    string `json:"id"`
		Date  string `json:"date"`
		Lines []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
			Total    string `json:"total"`
		} `json:"lines"`
		Free []struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"free"`
		TotalQuantity      int    `json:"total_quantity"`
		Total              string `json:"total"`
		PromotionDiscount  string `json:"promotion_discount"`
		MembershipDiscount string `json:"membership_discount"`
		FinalTotal         string `json:"final_total"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))

	assert.Equal(t, "test-receipt", decoded.ID)
	assert.Equal(t, "2026-06-15", decoded.Date)
	require.Len(t, decoded.Lines, 1)
	assert.Equal(t, "6000", decoded.Lines[0].Total)
	require.Len(t, decoded.Free, 1)
	assert.Equal(t, 2, decoded.Free[0].Quantity)
	assert.Equal(t, "2000", decoded.PromotionDiscount)
	assert.Equal(t, "4000", decoded.FinalTotal)
}

func TestAppendReopensExistingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipts.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Append(testReceipt()))
	require.NoError(t, log.Close())

	log, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Append(testReceipt()))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}
