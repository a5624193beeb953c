package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// MapController serves user profiles with their location map
type MapController struct {
	mapService *services.MapService
}

// NewMapController creates a new MapController
func NewMapController(mapService *services.MapService) *MapController {
	return &MapController{mapService: mapService}
}

// ShowUser renders the profile and a fresh map of the user's address
func (c *MapController) ShowUser(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrUserNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	userMap, err := c.mapService.ShowUserMap(ctx.Request.Context(), id)
	if err != nil {
		renderError(ctx, err)
		return
	}

	render(ctx, http.StatusOK, "users_show.html", gin.H{
		"Title":       userMap.User.FullName(),
		"User":        userMap.User,
		"MapURL":      userMap.URL,
		"MapFilename": userMap.Filename,
	})
}

// CleanupMap deletes a generated map image
func (c *MapController) CleanupMap(ctx *gin.Context) {
	if err := c.mapService.Cleanup(ctx.Param("filename")); err != nil {
		ctx.String(http.StatusInternalServerError, "Error deleting file")
		return
	}
	ctx.String(http.StatusOK, "File deleted")
}
