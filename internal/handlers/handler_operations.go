package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/middleware"
)

// operationHandler handles exchange operation requests.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

func newOperationHandler(os portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{operationService: os}
}

func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group("/operations")
	{
		operations.GET("", h.listOperations)
		operations.POST("/:number/complete", h.completeOperation)
	}
}

// listOperations godoc
// @Summary List exchange operations
// @Description Retrieves operations, optionally filtered by status. Without a status filter the most recent operations are returned.
// @Tags operations
// @Produce json
// @Param status query string false "Status filter" Enums(PENDING, COMPLETED, CANCELLED, ESCALATED)
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} domain.ExchangeOperation
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /operations [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.OperationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	ops, err := h.operationService.ListOperations(c.Request.Context(), domain.OperationStatus(query.Status), query.Limit)
	if err != nil {
		logger.Error("Failed to list operations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list operations"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

// completeOperation godoc
// @Summary Complete a pending operation
// @Description Marks a PENDING operation as COMPLETED. Any other current status is rejected.
// @Tags operations
// @Produce json
// @Param number path string true "Operation number"
// @Success 200 {object} domain.ExchangeOperation
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Operation is not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /operations/{number}/complete [post]
func (h *operationHandler) completeOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	op, err := h.operationService.CompleteOperation(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Operation not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Operation is not pending"})
		} else {
			logger.Error("Failed to complete operation", slog.String("operation_number", number), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete operation"})
		}
		return
	}

	logger.Info("Operation completed", slog.String("operation_number", number))
	c.JSON(http.StatusOK, op)
}
