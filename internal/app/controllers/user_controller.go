package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// UserController serves /api/users
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers retrieves all users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{Users: users})
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrUserNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{User: user})
}

// CreateUser creates a user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} dto.UserCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user data or email already exists"
// @Router /api/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	user, err := c.userService.Create(ctx.Request.Context(), middleware.JSONPayload(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserCreatedResponse{ID: user.ID, User: user})
}

// UpdateUser applies the fields present in the body
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserUpdatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrUserNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), id, middleware.JSONPayload(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserUpdatedResponse{Success: "User updated", User: user})
}

// DeleteUser deletes a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrUserNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: "User deleted"})
}
