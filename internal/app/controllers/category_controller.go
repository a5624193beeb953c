package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
)

// CategoryController serves the read-only /api/categories
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories retrieves all hazard categories
// @Summary List hazard categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /api/categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.categoryService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}
