package domain

import "time"

// QuoteSubscription is a chat that receives quote broadcasts from the bot.
type QuoteSubscription struct {
	ID          int64      `json:"id"`
	ChatID      string     `json:"chatID"`
	DisplayName string     `json:"displayName,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
