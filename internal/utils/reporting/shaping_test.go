package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

func TestLabelDailySummary(t *testing.T) {
	points := []domain.DailySummaryPoint{
		{Day: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ProfitUSD: decimal.NewFromInt(10), Operations: 2},
		{Day: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), ProfitUSD: decimal.NewFromInt(20), Operations: 1},
	}

	labeled := LabelDailySummary(points)

	require.Len(t, labeled, 2)
	assert.Equal(t, "05/03", labeled[0].DayLabel)
	assert.Equal(t, "07/03", labeled[1].DayLabel)
	// Order and values must be untouched; the gap on 06/03 stays a gap
	assert.True(t, labeled[0].ProfitUSD.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, labeled[1].Operations)
}

func TestShapeRecentOperations(t *testing.T) {
	loc := time.UTC
	ops := []domain.ExchangeOperation{
		{
			OperationNumber:  "OP-1",
			CreatedAt:        time.Date(2024, 3, 15, 14, 30, 0, 0, loc),
			CounterpartyName: "Acme",
			InputAmount:      decimal.NewNullDecimal(decimal.RequireFromString("1000")),
			InputCurrency:    "USD",
			OutputAmount:     decimal.NewNullDecimal(decimal.RequireFromString("850")),
			OutputCurrency:   "EUR",
			GrossProfitUSD:   decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
			Status:           domain.StatusCompleted,
		},
		{
			OperationNumber: "OP-2",
			CreatedAt:       time.Date(2024, 3, 15, 9, 5, 0, 0, loc),
			InputCurrency:   "USD",
			Status:          domain.StatusPending,
		},
	}

	views := ShapeRecentOperations(ops, loc)

	require.Len(t, views, 2)
	assert.Equal(t, "15/03 14:30", views[0].CreatedAtFormatted)
	assert.Equal(t, "1000 USD", views[0].Delivered)
	assert.Equal(t, "850 EUR", views[0].Received)
	assert.True(t, views[0].GrossProfitUSD.Valid)

	// Missing amounts render without dangling whitespace, not as zeros
	assert.Equal(t, "USD", views[1].Delivered)
	assert.Equal(t, "", views[1].Received)
	assert.False(t, views[1].GrossProfitUSD.Valid)
}

func TestShapePendingOperations(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ops := []domain.ExchangeOperation{
		{OperationNumber: "OP-OLD", CreatedAt: now.Add(-25 * time.Hour), Status: domain.StatusPending},
		{OperationNumber: "OP-LABELED", CreatedAt: now.Add(-1 * time.Hour), Status: domain.StatusPending, PriorityLabel: domain.PriorityLabelHigh},
		{OperationNumber: "OP-FUTURE", CreatedAt: now.Add(10 * time.Minute), Status: domain.StatusPending},
	}

	views := ShapePendingOperations(ops, now)

	require.Len(t, views, 3)
	assert.Equal(t, domain.PriorityHigh, views[0].Priority)
	assert.Equal(t, "1d 1h", views[0].ElapsedLabel)

	// Gateway label beats the fresh timestamp
	assert.Equal(t, domain.PriorityHigh, views[1].Priority)

	// Timestamps ahead of the server clock clamp to zero elapsed
	assert.Equal(t, 0.0, views[2].ElapsedHours)
	assert.Equal(t, "0 min", views[2].ElapsedLabel)
	assert.Equal(t, domain.PriorityNormal, views[2].Priority)
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		elapsed float64
		want    domain.Priority
	}{
		{"label alta wins", domain.PriorityLabelHigh, 0.5, domain.PriorityHigh},
		{"label media wins over heuristic", domain.PriorityLabelMedium, 48, domain.PriorityMedium},
		{"unknown label falls through", "URGENTE", 1, domain.PriorityNormal},
		{"over 24h is high", "", 25, domain.PriorityHigh},
		{"over 12h is medium", "", 13, domain.PriorityMedium},
		{"exactly 12h stays normal", "", 12, domain.PriorityNormal},
		{"fresh is normal", "", 1, domain.PriorityNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.label, tt.elapsed))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0 min"},
		{0.5, "30 min"},
		{0.99, "59 min"},
		{1, "1h 0m"},
		{1.25, "1h 15m"},
		{23.98, "23h 58m"},
		{24, "1d 0h"},
		{25, "1d 1h"},
		{49.9, "2d 1h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.hours), "hours=%v", tt.hours)
	}
}
