package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateConfigRequest defines the editable commission parameters of one
// currency. Percent fields may legitimately be zero, so range checks live in
// the service.
type UpdateConfigRequest struct {
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	SpreadPercent     decimal.Decimal `json:"spreadPercent"`
	MinAmount         decimal.Decimal `json:"minAmount"`
	MaxAmount         decimal.Decimal `json:"maxAmount"`
	Active            *bool           `json:"active" binding:"required"`
}

// SetSubscriptionActiveRequest toggles a quote subscription.
type SetSubscriptionActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
