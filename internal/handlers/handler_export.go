package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils/export"
)

const exportRowLimit = 200

// exportHandler serves flat-file downloads of the admin datasets.
type exportHandler struct {
	stockService     portssvc.StockSvcFacade
	movementService  portssvc.MovementSvcFacade
	operationService portssvc.OperationSvcFacade
}

func newExportHandler(ss portssvc.StockSvcFacade, ms portssvc.MovementSvcFacade, os portssvc.OperationSvcFacade) *exportHandler {
	return &exportHandler{stockService: ss, movementService: ms, operationService: os}
}

func registerExportRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade, movementService portssvc.MovementSvcFacade, operationService portssvc.OperationSvcFacade) {
	h := newExportHandler(stockService, movementService, operationService)
	rg.GET("/export/:dataset", h.exportDataset)
}

// exportDataset godoc
// @Summary Export a dataset
// @Description Downloads one of the admin datasets (stock, movements, operations) as CSV or JSON.
// @Tags export
// @Produce json
// @Produce text/csv
// @Param dataset path string true "Dataset" Enums(stock, movements, operations)
// @Param format query string false "Serialization format" Enums(csv, json) default(csv)
// @Success 200 "File download"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/{dataset} [get]
func (h *exportHandler) exportDataset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	dataset := c.Param("dataset")
	var ds export.Dataset
	var records any

	switch dataset {
	case "stock":
		stock, err := h.stockService.ListStock(c.Request.Context())
		if err != nil {
			logger.Error("Failed to export stock", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export stock"})
			return
		}
		ds = export.StockDataset(stock)
		records = stock
	case "movements":
		movements, err := h.movementService.ListMovements(c.Request.Context(), exportRowLimit)
		if err != nil {
			logger.Error("Failed to export movements", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export movements"})
			return
		}
		ds = export.MovementsDataset(movements)
		records = movements
	case "operations":
		ops, err := h.operationService.ListOperations(c.Request.Context(), "", exportRowLimit)
		if err != nil {
			logger.Error("Failed to export operations", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export operations"})
			return
		}
		ds = export.OperationsDataset(ops)
		records = ops
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown dataset: " + dataset})
		return
	}

	filename := fmt.Sprintf("%s_%s", dataset, time.Now().Format("2006-01-02"))

	if query.Format == "json" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", filename))
		c.JSON(http.StatusOK, records)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, ds); err != nil {
		logger.Error("Failed to serialize CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to serialize export"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
