package repositories

import (
	"context"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// StockReader defines read operations for currency stock data.
type StockReader interface {
	// ListStock retrieves all currency stock rows ordered by id.
	ListStock(ctx context.Context) ([]domain.CurrencyStock, error)

	// FindStockByID retrieves a single stock row.
	FindStockByID(ctx context.Context, id int64) (*domain.CurrencyStock, error)
}

// StockWriter defines write operations for currency stock data.
type StockWriter interface {
	// UpdateStock sets prices, available stock and the updated-at timestamp of
	// a stock row and returns the canonical post-write row.
	UpdateStock(ctx context.Context, stock domain.CurrencyStock, updatedAt time.Time) (*domain.CurrencyStock, error)
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
