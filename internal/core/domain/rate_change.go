package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateChange is one entry of the quote change log the bot writes whenever a
// published rate moves.
type RateChange struct {
	ID             int64           `json:"id"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	PreviousRate   decimal.Decimal `json:"previousRate"`
	NewRate        decimal.Decimal `json:"newRate"`
	ChangePercent  decimal.Decimal `json:"changePercent"`
	CreatedAt      time.Time       `json:"createdAt"`
}
