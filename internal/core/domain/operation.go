package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationStatus is the lifecycle state of an exchange operation.
// Only PENDING -> COMPLETED is triggered from this backend; every other
// transition happens on the bot side.
type OperationStatus string

const (
	StatusPending   OperationStatus = "PENDING"
	StatusCompleted OperationStatus = "COMPLETED"
	StatusCancelled OperationStatus = "CANCELLED"
	StatusEscalated OperationStatus = "ESCALATED"
)

// Priority is the derived urgency classification of a pending operation.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityNormal Priority = "NORMAL"
)

// Gateway-supplied priority labels written by the bot. When present they take
// precedence over the elapsed-time heuristic.
const (
	PriorityLabelHigh   = "ALTA"
	PriorityLabelMedium = "MEDIA"
)

// ExchangeOperation is a single currency-exchange transaction recorded by the
// bot-driven customer flow. Profit and margin are nullable: the bot only fills
// them in once the operation settles.
type ExchangeOperation struct {
	OperationNumber  string              `json:"operationNumber"`
	CreatedAt        time.Time           `json:"createdAt"`
	CounterpartyName string              `json:"counterpartyName"`
	InputAmount      decimal.NullDecimal `json:"inputAmount"`
	InputCurrency    string              `json:"inputCurrency"`
	OutputAmount     decimal.NullDecimal `json:"outputAmount"`
	OutputCurrency   string              `json:"outputCurrency"`
	GrossProfitUSD   decimal.NullDecimal `json:"grossProfitUSD"`
	MarginPercent    decimal.NullDecimal `json:"marginPercent"`
	Status           OperationStatus     `json:"status"`
	PriorityLabel    string              `json:"priorityLabel,omitempty"`
	AssignedUserID   *string             `json:"assignedUserID,omitempty"`
	Rate             decimal.NullDecimal `json:"rate"`
	EntryPrice       decimal.NullDecimal `json:"entryPrice"`
	ExitPrice        decimal.NullDecimal `json:"exitPrice"`
}
