package repositories

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// ReportingRepository reads the precomputed reporting views maintained by the
// database (trailing-30-days daily summary and profit by currency pair).
type ReportingRepository interface {
	// GetDailySummary retrieves the trailing-30-days view, ascending by day.
	// Missing days are simply absent from the result.
	GetDailySummary(ctx context.Context) ([]domain.DailySummaryPoint, error)

	// GetProfitByPair retrieves per-pair profit totals, descending by profit.
	GetProfitByPair(ctx context.Context) ([]domain.PairProfit, error)
}
