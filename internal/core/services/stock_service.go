package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
)

// stockService implements the StockSvcFacade interface.
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) ListStock(ctx context.Context) ([]domain.CurrencyStock, error) {
	stock, err := s.stockRepo.ListStock(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency stock")
		return nil, fmt.Errorf("failed to list currency stock: %w", err)
	}
	if stock == nil {
		return []domain.CurrencyStock{}, nil
	}
	return stock, nil
}

// UpdateStock applies a staff edit to one stock row and returns the canonical
// post-write row. On any failure the stored row is untouched, so clients can
// revert their optimistic edit to it.
func (s *stockService) UpdateStock(ctx context.Context, id int64, req dto.UpdateStockRequest) (*domain.CurrencyStock, error) {
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() || req.AvailableStock.IsNegative() {
		return nil, fmt.Errorf("%w: prices and stock must not be negative", apperrors.ErrValidation)
	}

	current, err := s.stockRepo.FindStockByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to load stock row for update", slog.Int64("stock_id", id))
		return nil, fmt.Errorf("failed to load stock row: %w", err)
	}

	current.BuyPrice = req.BuyPrice
	current.SellPrice = req.SellPrice
	current.AvailableStock = req.AvailableStock

	updated, err := s.stockRepo.UpdateStock(ctx, *current, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update stock row", slog.Int64("stock_id", id))
		return nil, fmt.Errorf("failed to update stock row: %w", err)
	}

	s.LogInfo(ctx, "Currency stock updated",
		slog.Int64("stock_id", updated.ID),
		slog.String("currency", updated.Currency))
	return updated, nil
}
