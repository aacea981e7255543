package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// aiHandler exposes the standalone generative-text helpers.
type aiHandler struct {
	aiService portssvc.AITextSvc
}

func newAIHandler(ai portssvc.AITextSvc) *aiHandler {
	return &aiHandler{aiService: ai}
}

func registerAIRoutes(rg *gin.RouterGroup, aiService portssvc.AITextSvc) {
	h := newAIHandler(aiService)
	ai := rg.Group("/ai")
	{
		ai.GET("/daily-verse", h.dailyVerse)
		ai.POST("/location-scout", h.locationScout)
	}
}

// dailyVerse godoc
// @Summary Verse-of-the-day reflection
// @Tags ai
// @Produce json
// @Success 200 {object} dto.DailyVerseResponse
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Security BearerAuth
// @Router /ai/daily-verse [get]
func (h *aiHandler) dailyVerse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	verse, err := h.aiService.DailyVerse(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate daily verse")
		return
	}
	c.JSON(http.StatusOK, dto.DailyVerseResponse{Verse: verse})
}

// locationScout godoc
// @Summary Suggest outreach locations for an area
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.LocationScoutRequest true "Area to scout"
// @Success 200 {object} dto.GeneratedTextResponse
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Security BearerAuth
// @Router /ai/location-scout [post]
func (h *aiHandler) locationScout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LocationScoutRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	text, err := h.aiService.LocationScout(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to scout locations")
		return
	}
	c.JSON(http.StatusOK, dto.GeneratedTextResponse{Text: text})
}
