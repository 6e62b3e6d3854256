package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// reportingRepository reads the two reporting views the migrations create.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) GetDailySummary(ctx context.Context) ([]domain.DailySummaryPoint, error) {
	query := `SELECT day, profit_usd, operations FROM daily_summary_last_30_days ORDER BY day ASC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying daily summary: %w", err)
	}
	defer rows.Close()

	var result []domain.DailySummaryPoint
	for rows.Next() {
		var p domain.DailySummaryPoint
		if err := rows.Scan(&p.Day, &p.ProfitUSD, &p.Operations); err != nil {
			return nil, fmt.Errorf("error scanning daily summary row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily summary rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.DailySummaryPoint{}, nil
	}
	return result, nil
}

func (r *reportingRepository) GetProfitByPair(ctx context.Context) ([]domain.PairProfit, error) {
	query := `SELECT pair_label, total_profit_usd FROM profit_by_currency_pair ORDER BY total_profit_usd DESC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying profit by pair: %w", err)
	}
	defer rows.Close()

	var result []domain.PairProfit
	for rows.Next() {
		var p domain.PairProfit
		if err := rows.Scan(&p.PairLabel, &p.TotalProfitUSD); err != nil {
			return nil, fmt.Errorf("error scanning profit by pair row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profit by pair rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.PairProfit{}, nil
	}
	return result, nil
}
