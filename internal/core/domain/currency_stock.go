package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyStock represents the desk's holdings and pricing for one currency.
// BuyPrice <= SellPrice is assumed but not enforced at this layer; the bot side
// owns that invariant.
type CurrencyStock struct {
	ID             int64           `json:"id"`
	Currency       string          `json:"currency"`
	BuyPrice       decimal.Decimal `json:"buyPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	AvailableStock decimal.Decimal `json:"availableStock"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
