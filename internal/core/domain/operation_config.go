package domain

import "github.com/shopspring/decimal"

// OperationConfig holds the per-currency commission parameters the bot applies
// when quoting an exchange.
type OperationConfig struct {
	ID                int64           `json:"id"`
	Currency          string          `json:"currency"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	SpreadPercent     decimal.Decimal `json:"spreadPercent"`
	MinAmount         decimal.Decimal `json:"minAmount"`
	MaxAmount         decimal.Decimal `json:"maxAmount"`
	Active            bool            `json:"active"`
}
