package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a manual stock movement.
type MovementKind string

const (
	MovementIn     MovementKind = "IN"
	MovementOut    MovementKind = "OUT"
	MovementAdjust MovementKind = "ADJUST"
)

// StockMovement is one manual change to a currency's available stock,
// recorded outside of the regular exchange-operation flow.
type StockMovement struct {
	ID        int64           `json:"id"`
	Currency  string          `json:"currency"`
	Kind      MovementKind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
	Actor     string          `json:"actor,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
