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

// configHandler handles commission parameter requests.
type configHandler struct {
	configService portssvc.ConfigSvcFacade
}

func newConfigHandler(cs portssvc.ConfigSvcFacade) *configHandler {
	return &configHandler{configService: cs}
}

func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.ConfigSvcFacade) {
	h := newConfigHandler(configService)

	cfg := rg.Group("/config")
	{
		cfg.GET("", h.listConfig)
		cfg.PUT("/:id", h.updateConfig)
	}
}

// listConfig godoc
// @Summary List commission parameters
// @Description Retrieves the per-currency commission parameters the bot quotes with.
// @Tags config
// @Produce json
// @Success 200 {array} domain.OperationConfig
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /config [get]
func (h *configHandler) listConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	configs, err := h.configService.ListConfig(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list config"})
		return
	}
	c.JSON(http.StatusOK, configs)
}

// updateConfig godoc
// @Summary Update commission parameters
// @Description Updates one currency's commission parameters and returns the row as persisted.
// @Tags config
// @Accept json
// @Produce json
// @Param id path int true "Config row ID"
// @Param config body dto.UpdateConfigRequest true "New values"
// @Success 200 {object} domain.OperationConfig
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /config/{id} [put]
func (h *configHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid config ID"})
		return
	}

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.configService.UpdateConfig(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Config row not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update config", slog.Int64("config_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update config"})
		}
		return
	}

	logger.Info("Config updated", slog.Int64("config_id", id), slog.String("currency", updated.Currency))
	c.JSON(http.StatusOK, updated)
}
