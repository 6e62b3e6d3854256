package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
)

// dashboardHandler serves the batched dashboard load.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Load the dashboard
// @Description Fetches all dashboard slices concurrently: KPIs, daily summary, recent operations, profit by currency and pending operations. Failed slices come back empty with an entry in the failures map.
// @Tags dashboard
// @Produce json
// @Param scope query string false "KPI scope" Enums(all, mine) default(all)
// @Success 200 {object} domain.DashboardData
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	scope := domain.ScopeAll
	userID := ""
	if query.Scope == "mine" {
		callerID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		scope = domain.ScopeUser
		userID = callerID
	}

	data, err := h.dashboardService.LoadDashboard(c.Request.Context(), scope, userID)
	if err != nil {
		logger.Error("Failed to load dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	if len(data.Failures) > 0 {
		logger.Warn("Dashboard loaded with degraded slices", slog.Int("failed_slices", len(data.Failures)))
	}
	c.JSON(http.StatusOK, data)
}
