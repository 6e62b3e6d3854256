package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KpiScope selects whose completed operations feed the KPI aggregation.
type KpiScope string

const (
	ScopeAll  KpiScope = "all"
	ScopeUser KpiScope = "user"
)

// KpiSnapshot holds the derived today/month figures shown on the dashboard.
// It is recomputed on every load and never persisted.
type KpiSnapshot struct {
	ProfitToday    decimal.Decimal `json:"profitToday"`
	CountToday     int             `json:"countToday"`
	ProfitMonth    decimal.Decimal `json:"profitMonth"`
	CountMonth     int             `json:"countMonth"`
	AvgMarginMonth decimal.Decimal `json:"avgMarginMonth"`
}

// DailySummaryPoint is one day of the trailing-30-days profit chart.
// Missing days are simply absent; no gap-filling happens anywhere.
type DailySummaryPoint struct {
	Day        time.Time       `json:"day"`
	ProfitUSD  decimal.Decimal `json:"profitUSD"`
	Operations int             `json:"operations"`
	DayLabel   string          `json:"dayLabel"` // dd/MM, attached by the derivation layer
}

// PairProfit is a raw row of the profit-by-currency-pair view.
type PairProfit struct {
	PairLabel      string          `json:"pairLabel"`
	TotalProfitUSD decimal.Decimal `json:"totalProfitUSD"`
}

// CurrencyProfitGroup is one bucket of the pie chart: a secondary currency and
// its summed profit. At most five named buckets plus an "Others" bucket exist.
type CurrencyProfitGroup struct {
	Label  string          `json:"label"`
	Profit decimal.Decimal `json:"profit"`
}

// RecentOperationView is a display-ready row of the recent operations table.
// Delivered/Received are "amount CUR" strings; no numeric value is mutated.
type RecentOperationView struct {
	OperationNumber    string              `json:"operationNumber"`
	CreatedAt          time.Time           `json:"createdAt"`
	CreatedAtFormatted string              `json:"createdAtFormatted"`
	CounterpartyName   string              `json:"counterpartyName"`
	Delivered          string              `json:"delivered"`
	Received           string              `json:"received"`
	GrossProfitUSD     decimal.NullDecimal `json:"grossProfitUSD"`
	Status             OperationStatus     `json:"status"`
}

// PendingOperationView is a pending operation enriched with its elapsed time
// and urgency classification.
type PendingOperationView struct {
	ExchangeOperation
	ElapsedHours float64  `json:"elapsedHours"`
	ElapsedLabel string   `json:"elapsedLabel"`
	Priority     Priority `json:"priority"`
}

// GeneralStats are the aggregate counters of the analytics tab.
type GeneralStats struct {
	TotalUsers          int64           `json:"totalUsers"`
	ActiveSubscriptions int64           `json:"activeSubscriptions"`
	OperationsThisMonth int64           `json:"operationsThisMonth"`
	MovementsThisMonth  int64           `json:"movementsThisMonth"`
	TotalInputVolume    decimal.Decimal `json:"totalInputVolume"`
}

// DashboardData is the result of the fan-out dashboard load. Each slice settles
// independently: a failed fetch leaves its slice empty (or Kpis nil, which the
// UI renders as "unavailable" rather than zero) and records a message in
// Failures keyed by slice name.
type DashboardData struct {
	Kpis              *KpiSnapshot           `json:"kpis"`
	DailySummary      []DailySummaryPoint    `json:"dailySummary"`
	RecentOperations  []RecentOperationView  `json:"recentOperations"`
	ProfitByCurrency  []CurrencyProfitGroup  `json:"profitByCurrency"`
	PendingOperations []PendingOperationView `json:"pendingOperations"`
	Failures          map[string]string      `json:"failures,omitempty"`
}
