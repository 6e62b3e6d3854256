package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

func TestWriteCSV(t *testing.T) {
	ds := Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x,y"}, {"2", ""}},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, ds)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a,b", lines[0])
	// Embedded commas must be quoted
	assert.Equal(t, `1,"x,y"`, lines[1])
}

func TestOperationsDatasetNullsExportEmpty(t *testing.T) {
	ops := []domain.ExchangeOperation{
		{
			OperationNumber: "OP-1",
			CreatedAt:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			InputCurrency:   "USD",
			Status:          domain.StatusPending,
			// profit, margin, rate all unsettled
		},
		{
			OperationNumber: "OP-2",
			CreatedAt:       time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
			Status:          domain.StatusCompleted,
			GrossProfitUSD:  decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
		},
	}

	ds := OperationsDataset(ops)

	require.Len(t, ds.Rows, 2)
	profitIdx := indexOf(t, ds.Headers, "gross_profit_usd")
	assert.Equal(t, "", ds.Rows[0][profitIdx], "unsettled profit must export as an empty cell, not 0")
	assert.Equal(t, "12.5", ds.Rows[1][profitIdx])
}

func TestStockDataset(t *testing.T) {
	stock := []domain.CurrencyStock{
		{
			ID:             1,
			Currency:       "USD",
			BuyPrice:       decimal.RequireFromString("980.5"),
			SellPrice:      decimal.RequireFromString("1010"),
			AvailableStock: decimal.Zero,
			UpdatedAt:      time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	ds := StockDataset(stock)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, []string{"USD", "980.5", "1010", "0", "2024-03-15 10:30:00"}, ds.Rows[0])
}

func TestMovementsDataset(t *testing.T) {
	movements := []domain.StockMovement{
		{
			ID:        1,
			Currency:  "EUR",
			Kind:      domain.MovementAdjust,
			Amount:    decimal.RequireFromString("-250"),
			Reason:    "recount",
			CreatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		},
	}

	ds := MovementsDataset(movements)

	require.Len(t, ds.Rows, 1)
	kindIdx := indexOf(t, ds.Headers, "kind")
	assert.Equal(t, "ADJUST", ds.Rows[0][kindIdx])
}

func indexOf(t *testing.T, headers []string, name string) int {
	t.Helper()
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	t.Fatalf("header %q not found", name)
	return -1
}
