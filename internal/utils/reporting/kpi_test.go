package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func completedOp(number string, createdAt time.Time, profit, margin string) domain.ExchangeOperation {
	op := domain.ExchangeOperation{
		OperationNumber: number,
		CreatedAt:       createdAt,
		Status:          domain.StatusCompleted,
	}
	if profit != "" {
		op.GrossProfitUSD = decimal.NewNullDecimal(decimal.RequireFromString(profit))
	}
	if margin != "" {
		op.MarginPercent = decimal.NewNullDecimal(decimal.RequireFromString(margin))
	}
	return op
}

func TestDeriveKpisEmptyInput(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	snap := DeriveKpis(nil, now, loc)

	assert.True(t, snap.ProfitToday.IsZero())
	assert.True(t, snap.ProfitMonth.IsZero())
	assert.Equal(t, 0, snap.CountToday)
	assert.Equal(t, 0, snap.CountMonth)
	// No division by zero: average is defined as zero with no operations
	assert.True(t, snap.AvgMarginMonth.IsZero())
}

func TestDeriveKpisNullFieldsStillCount(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	ops := []domain.ExchangeOperation{
		completedOp("OP-1", now.Add(-1*time.Hour), "100.50", "2"),
		completedOp("OP-2", now.Add(-2*time.Hour), "", ""), // unsettled: null profit and margin
	}

	snap := DeriveKpis(ops, now, loc)

	assert.Equal(t, 2, snap.CountMonth)
	assert.Equal(t, 2, snap.CountToday)
	assert.True(t, snap.ProfitMonth.Equal(decimal.RequireFromString("100.50")), "null profit contributes zero, got %s", snap.ProfitMonth)
	// Average divides by the count of all operations, not just those with a margin
	assert.True(t, snap.AvgMarginMonth.Equal(decimal.NewFromInt(1)), "got %s", snap.AvgMarginMonth)
}

func TestDeriveKpisOrderInsensitive(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	ops := []domain.ExchangeOperation{
		completedOp("OP-1", now.Add(-1*time.Hour), "10", "1"),
		completedOp("OP-2", time.Date(2024, 3, 2, 9, 0, 0, 0, loc), "20", "2"),
		completedOp("OP-3", time.Date(2024, 3, 10, 9, 0, 0, 0, loc), "30", "3"),
	}
	reversed := []domain.ExchangeOperation{ops[2], ops[1], ops[0]}

	a := DeriveKpis(ops, now, loc)
	b := DeriveKpis(reversed, now, loc)

	assert.True(t, a.ProfitMonth.Equal(b.ProfitMonth))
	assert.True(t, a.ProfitToday.Equal(b.ProfitToday))
	assert.True(t, a.AvgMarginMonth.Equal(b.AvgMarginMonth))
	assert.Equal(t, a.CountMonth, b.CountMonth)
	assert.Equal(t, a.CountToday, b.CountToday)
}

func TestDeriveKpisDayBoundary(t *testing.T) {
	loc := mustLocation(t, "America/Argentina/Buenos_Aires")
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	ops := []domain.ExchangeOperation{
		completedOp("OP-LATE", time.Date(2024, 3, 14, 23, 59, 59, 0, loc), "40", "1"),
		completedOp("OP-EARLY", time.Date(2024, 3, 15, 0, 0, 1, 0, loc), "60", "1"),
	}

	snap := DeriveKpis(ops, now, loc)

	assert.Equal(t, 2, snap.CountMonth)
	assert.Equal(t, 1, snap.CountToday, "23:59:59 of the previous day must not count as today")
	assert.True(t, snap.ProfitToday.Equal(decimal.NewFromInt(60)))
	assert.True(t, snap.ProfitMonth.Equal(decimal.NewFromInt(100)))
}

func TestDeriveKpisTimezoneBucketing(t *testing.T) {
	// 01:30 UTC on the 15th is still the 14th in Buenos Aires (UTC-3)
	loc := mustLocation(t, "America/Argentina/Buenos_Aires")
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	utcOp := completedOp("OP-UTC", time.Date(2024, 3, 15, 1, 30, 0, 0, time.UTC), "25", "1")

	snap := DeriveKpis([]domain.ExchangeOperation{utcOp}, now, loc)

	assert.Equal(t, 1, snap.CountMonth)
	assert.Equal(t, 0, snap.CountToday)
}

func TestMonthStart(t *testing.T) {
	loc := mustLocation(t, "America/Argentina/Buenos_Aires")
	now := time.Date(2024, 3, 15, 12, 34, 56, 0, loc)

	start := MonthStart(now, loc)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), start)
}

func TestSameCalendarDay(t *testing.T) {
	loc := time.UTC
	assert.True(t, SameCalendarDay(
		time.Date(2024, 3, 15, 0, 0, 1, 0, loc),
		time.Date(2024, 3, 15, 23, 59, 59, 0, loc),
		loc,
	))
	assert.False(t, SameCalendarDay(
		time.Date(2024, 3, 14, 23, 59, 59, 0, loc),
		time.Date(2024, 3, 15, 0, 0, 1, 0, loc),
		loc,
	))
}
