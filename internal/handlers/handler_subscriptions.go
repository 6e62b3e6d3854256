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

// subscriptionHandler handles quote subscription requests.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)

	subs := rg.Group("/subscriptions")
	{
		subs.GET("", h.listSubscriptions)
		subs.PUT("/:id/active", h.setSubscriptionActive)
	}
}

// listSubscriptions godoc
// @Summary List quote subscriptions
// @Description Retrieves every chat subscribed to quote broadcasts, newest first.
// @Tags subscriptions
// @Produce json
// @Success 200 {array} domain.QuoteSubscription
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) listSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list subscriptions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// setSubscriptionActive godoc
// @Summary Toggle a subscription
// @Description Activates or deactivates quote broadcasts for one chat.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription ID"
// @Param toggle body dto.SetSubscriptionActiveRequest true "Desired state"
// @Success 200 {object} domain.QuoteSubscription
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/active [put]
func (h *subscriptionHandler) setSubscriptionActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid subscription ID"})
		return
	}

	var req dto.SetSubscriptionActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sub, err := h.subscriptionService.SetSubscriptionActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Subscription not found"})
		} else {
			logger.Error("Failed to toggle subscription", slog.Int64("subscription_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to toggle subscription"})
		}
		return
	}

	logger.Info("Subscription toggled", slog.Int64("subscription_id", id), slog.Bool("active", sub.Active))
	c.JSON(http.StatusOK, sub)
}
