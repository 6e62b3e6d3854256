package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateStockRequest defines the staff-editable fields of a stock row. The
// edit form always submits the full row. Zero is a legal value for every
// field (a currency can be sold out), so range validation happens in the
// service rather than through binding tags.
type UpdateStockRequest struct {
	BuyPrice       decimal.Decimal `json:"buyPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	AvailableStock decimal.Decimal `json:"availableStock"`
}
