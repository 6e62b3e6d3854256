package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
)

// historyHandler serves the two read-only log endpoints: stock movements and
// the rate change log.
type historyHandler struct {
	movementService   portssvc.MovementSvcFacade
	rateChangeService portssvc.RateChangeSvcFacade
}

func newHistoryHandler(ms portssvc.MovementSvcFacade, rs portssvc.RateChangeSvcFacade) *historyHandler {
	return &historyHandler{movementService: ms, rateChangeService: rs}
}

func registerHistoryRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade, rateChangeService portssvc.RateChangeSvcFacade) {
	h := newHistoryHandler(movementService, rateChangeService)

	rg.GET("/movements", h.listMovements)
	rg.GET("/rates/changes", h.listRateChanges)
}

// listMovements godoc
// @Summary List stock movements
// @Description Retrieves the most recent manual stock movements, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} domain.StockMovement
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements [get]
func (h *historyHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), query.Limit)
	if err != nil {
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list movements"})
		return
	}
	c.JSON(http.StatusOK, movements)
}

// listRateChanges godoc
// @Summary List rate changes
// @Description Retrieves the most recent entries of the rate change log, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} domain.RateChange
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/changes [get]
func (h *historyHandler) listRateChanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	changes, err := h.rateChangeService.ListRateChanges(c.Request.Context(), query.Limit)
	if err != nil {
		logger.Error("Failed to list rate changes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rate changes"})
		return
	}
	c.JSON(http.StatusOK, changes)
}
