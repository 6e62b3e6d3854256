package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

const (
	dayLabelLayout  = "02/01"       // chart axis: day/month
	shortTimeLayout = "02/01 15:04" // recent operations table
)

// LabelDailySummary attaches a dd/MM axis label to each point. The input order
// (ascending by day, as supplied by the gateway view) is preserved; no
// filtering or gap-filling is performed.
func LabelDailySummary(points []domain.DailySummaryPoint) []domain.DailySummaryPoint {
	labeled := make([]domain.DailySummaryPoint, len(points))
	for i, p := range points {
		p.DayLabel = p.Day.Format(dayLabelLayout)
		labeled[i] = p
	}
	return labeled
}

// ShapeRecentOperations turns raw operation rows (most-recent-first) into
// display-ready table rows. This is purely string composition: the underlying
// numeric values are passed through untouched.
func ShapeRecentOperations(ops []domain.ExchangeOperation, loc *time.Location) []domain.RecentOperationView {
	views := make([]domain.RecentOperationView, len(ops))
	for i, op := range ops {
		views[i] = domain.RecentOperationView{
			OperationNumber:    op.OperationNumber,
			CreatedAt:          op.CreatedAt,
			CreatedAtFormatted: op.CreatedAt.In(loc).Format(shortTimeLayout),
			CounterpartyName:   op.CounterpartyName,
			Delivered:          formatLeg(op.InputAmount, op.InputCurrency),
			Received:           formatLeg(op.OutputAmount, op.OutputCurrency),
			GrossProfitUSD:     op.GrossProfitUSD,
			Status:             op.Status,
		}
	}
	return views
}

// formatLeg renders one side of an exchange as "amount CUR". Missing pieces
// are left out rather than rendered as zeros.
func formatLeg(amount decimal.NullDecimal, currency string) string {
	amountStr := ""
	if amount.Valid {
		amountStr = amount.Decimal.String()
	}
	return strings.TrimSpace(amountStr + " " + currency)
}

// ShapePendingOperations enriches raw pending rows with elapsed time and a
// priority classification relative to now.
func ShapePendingOperations(ops []domain.ExchangeOperation, now time.Time) []domain.PendingOperationView {
	views := make([]domain.PendingOperationView, len(ops))
	for i, op := range ops {
		elapsed := now.Sub(op.CreatedAt).Hours()
		if elapsed < 0 {
			// clock skew between bot and backend
			elapsed = 0
		}
		views[i] = domain.PendingOperationView{
			ExchangeOperation: op,
			ElapsedHours:      elapsed,
			ElapsedLabel:      FormatElapsed(elapsed),
			Priority:          ClassifyPriority(op.PriorityLabel, elapsed),
		}
	}
	return views
}

// ClassifyPriority resolves a pending operation's urgency. An explicit
// gateway-supplied label always wins over the time heuristic; the heuristic
// applies only when the bot did not set one.
func ClassifyPriority(label string, elapsedHours float64) domain.Priority {
	switch label {
	case domain.PriorityLabelHigh:
		return domain.PriorityHigh
	case domain.PriorityLabelMedium:
		return domain.PriorityMedium
	}
	switch {
	case elapsedHours > 24:
		return domain.PriorityHigh
	case elapsedHours > 12:
		return domain.PriorityMedium
	default:
		return domain.PriorityNormal
	}
}

// FormatElapsed renders fractional hours as "30 min", "1h 15m" or "1d 1h".
// All truncation is floor-based, no rounding.
func FormatElapsed(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%d min", int(math.Floor(hours*60)))
	}
	if hours < 24 {
		whole := int(math.Floor(hours))
		minutes := int(math.Floor((hours - math.Floor(hours)) * 60))
		return fmt.Sprintf("%dh %dm", whole, minutes)
	}
	days := int(math.Floor(hours / 24))
	remainder := int(math.Floor(math.Mod(hours, 24)))
	return fmt.Sprintf("%dd %dh", days, remainder)
}
