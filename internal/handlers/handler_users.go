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

// userHandler handles staff account administration. All routes require the
// manager role.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users", middleware.RequireRole(string(domain.RoleManager)))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List staff accounts
// @Description Retrieves all active staff accounts, newest first. Manager only.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// createUser godoc
// @Summary Create a staff account
// @Description Provisions a new staff account. Manager only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already in use"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create user"})
		}
		return
	}

	logger.Info("User created", slog.String("user_id", created.UserID), slog.String("creator_user_id", creatorUserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

// deleteUser godoc
// @Summary Delete a staff account
// @Description Soft-deletes a staff account. Manager only; self-deletion is rejected.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("id")

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if callerID == targetID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot delete your own account"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), targetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		} else {
			logger.Error("Failed to delete user", slog.String("target_user_id", targetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete user"})
		}
		return
	}

	logger.Info("User deleted", slog.String("target_user_id", targetID), slog.String("caller_user_id", callerID))
	c.Status(http.StatusNoContent)
}
