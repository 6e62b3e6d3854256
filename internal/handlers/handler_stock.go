package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
)

// stockHandler handles currency stock requests.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.listStock)
		stock.PUT("/:id", h.updateStock)
	}
}

// listStock godoc
// @Summary List currency stock
// @Description Retrieves the desk's holdings and pricing for every currency.
// @Tags stock
// @Produce json
// @Success 200 {array} domain.CurrencyStock
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stock, err := h.stockService.ListStock(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list stock"})
		return
	}
	c.JSON(http.StatusOK, stock)
}

// updateStock godoc
// @Summary Update a stock row
// @Description Applies a staff edit to one currency's prices and available stock. Returns the row as persisted.
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Stock row ID"
// @Param stock body dto.UpdateStockRequest true "New values"
// @Success 200 {object} domain.CurrencyStock
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/{id} [put]
func (h *stockHandler) updateStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid stock ID"})
		return
	}

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.stockService.UpdateStock(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Stock row not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update stock", slog.Int64("stock_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update stock"})
		}
		return
	}

	logger.Info("Stock updated", slog.Int64("stock_id", id), slog.String("currency", updated.Currency))
	c.JSON(http.StatusOK, updated)
}
