// Package reporting holds the pure view-model derivations behind the dashboard:
// KPI aggregation, chart label formatting, operation shaping and the
// top-N-with-others grouping. Everything here is a stateless transformation of
// already-fetched rows; nothing talks to the database.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// DeriveKpis computes the KPI snapshot from completed operations of the current
// month. Callers pass operations already restricted to the month (inclusive
// lower bound at month start in loc); scope filtering happens at the query.
//
// Null profit or margin contributes zero to the sums but the operation still
// counts. The average margin is zero when there are no operations.
func DeriveKpis(ops []domain.ExchangeOperation, now time.Time, loc *time.Location) domain.KpiSnapshot {
	snapshot := domain.KpiSnapshot{
		ProfitToday:    decimal.Zero,
		ProfitMonth:    decimal.Zero,
		AvgMarginMonth: decimal.Zero,
	}

	marginSum := decimal.Zero
	for _, op := range ops {
		profit := decimal.Zero
		if op.GrossProfitUSD.Valid {
			profit = op.GrossProfitUSD.Decimal
		}
		if op.MarginPercent.Valid {
			marginSum = marginSum.Add(op.MarginPercent.Decimal)
		}

		snapshot.ProfitMonth = snapshot.ProfitMonth.Add(profit)
		snapshot.CountMonth++

		if SameCalendarDay(op.CreatedAt, now, loc) {
			snapshot.ProfitToday = snapshot.ProfitToday.Add(profit)
			snapshot.CountToday++
		}
	}

	if snapshot.CountMonth > 0 {
		snapshot.AvgMarginMonth = marginSum.Div(decimal.NewFromInt(int64(snapshot.CountMonth)))
	}

	return snapshot
}

// MonthStart returns the first instant of now's month in loc.
func MonthStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}

// SameCalendarDay reports whether a and b fall on the same calendar day when
// both are viewed in loc. Comparing both sides in one reference location is
// what keeps 23:59:59 and 00:00:01 of the next day in different buckets.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
