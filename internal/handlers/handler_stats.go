package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
)

// statsHandler serves the aggregate counters of the analytics tab.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

func newStatsHandler(ss portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsService: ss}
}

func registerStatsRoutes(rg *gin.RouterGroup, statsService portssvc.StatsSvcFacade) {
	h := newStatsHandler(statsService)
	rg.GET("/stats", h.getStats)
}

// getStats godoc
// @Summary General statistics
// @Description Retrieves the aggregate counters: total users, active subscriptions, operations and movements this month, and this month's input volume.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.GeneralStats
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *statsHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.statsService.GeneralStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute general stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
