package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

func registerNavigationRoutes(rg *gin.RouterGroup) {
	rg.GET("/navigation", getNavigation)
}

// getNavigation godoc
// @Summary List the views visible to the authenticated role
// @Tags navigation
// @Produce json
// @Success 200 {object} dto.NavigationResponse
// @Security BearerAuth
// @Router /navigation [get]
func getNavigation(c *gin.Context) {
	role, ok := middleware.GetRoleFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.NavigationResponse{
		Role:  role,
		Views: domain.VisibleViews(role),
	})
}
