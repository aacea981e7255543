package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// sermonHandler handles sermon records and the AI outline generator.
type sermonHandler struct {
	sermonService portssvc.SermonSvcFacade
	aiService     portssvc.AITextSvc
}

func newSermonHandler(ss portssvc.SermonSvcFacade, ai portssvc.AITextSvc) *sermonHandler {
	return &sermonHandler{sermonService: ss, aiService: ai}
}

func registerSermonRoutes(rg *gin.RouterGroup, sermonService portssvc.SermonSvcFacade, aiService portssvc.AITextSvc) {
	h := newSermonHandler(sermonService, aiService)

	sermons := rg.Group("/sermons")
	{
		sermons.POST("", h.createSermon)
		sermons.GET("", h.listSermons)
		sermons.GET("/export", h.exportSermons)
		sermons.POST("/outline", h.generateOutline)
		sermons.GET("/:id", h.getSermon)
		sermons.PUT("/:id", h.updateSermon)
		sermons.DELETE("/:id", h.deleteSermon)
	}
}

// createSermon godoc
// @Summary Record a sermon
// @Tags sermons
// @Accept json
// @Produce json
// @Param sermon body dto.CreateSermonRequest true "Sermon details"
// @Success 201 {object} domain.Sermon
// @Security BearerAuth
// @Router /sermons [post]
func (h *sermonHandler) createSermon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateSermonRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	sermon, err := h.sermonService.CreateSermon(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create sermon")
		return
	}
	c.JSON(http.StatusCreated, sermon)
}

// listSermons godoc
// @Summary List sermon records
// @Tags sermons
// @Produce json
// @Success 200 {object} dto.ListSermonsResponse
// @Security BearerAuth
// @Router /sermons [get]
func (h *sermonHandler) listSermons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	sermons, err := h.sermonService.ListSermons(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list sermons")
		return
	}
	c.JSON(http.StatusOK, dto.ListSermonsResponse{Sermons: sermons})
}

// getSermon godoc
// @Summary Get a sermon by id
// @Tags sermons
// @Produce json
// @Param id path string true "Sermon ID"
// @Success 200 {object} domain.Sermon
// @Failure 404 {object} map[string]string "Sermon not found"
// @Security BearerAuth
// @Router /sermons/{id} [get]
func (h *sermonHandler) getSermon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	sermon, err := h.sermonService.GetSermonByID(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve sermon")
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// updateSermon godoc
// @Summary Update a sermon record
// @Tags sermons
// @Accept json
// @Produce json
// @Param id path string true "Sermon ID"
// @Param sermon body dto.UpdateSermonRequest true "Fields to update"
// @Success 200 {object} domain.Sermon
// @Failure 404 {object} map[string]string "Sermon not found"
// @Security BearerAuth
// @Router /sermons/{id} [put]
func (h *sermonHandler) updateSermon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateSermonRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	sermon, err := h.sermonService.UpdateSermon(c.Request.Context(), scope, c.Param("id"), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update sermon")
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// deleteSermon godoc
// @Summary Remove a sermon record
// @Tags sermons
// @Param id path string true "Sermon ID"
// @Success 204 "Sermon removed"
// @Security BearerAuth
// @Router /sermons/{id} [delete]
func (h *sermonHandler) deleteSermon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.sermonService.DeleteSermon(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete sermon")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportSermons godoc
// @Summary Export sermon records as CSV
// @Tags sermons
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /sermons/export [get]
func (h *sermonHandler) exportSermons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="sermons.csv"`)
	if err := h.sermonService.ExportSermonsCSV(c.Request.Context(), scope, c.Writer); err != nil {
		logger.Error("Sermon CSV export failed", slog.String("error", err.Error()))
	}
}

// generateOutline godoc
// @Summary Generate a sermon outline with the AI collaborator
// @Description Best effort; returns 503 when the collaborator is unreachable
// @Tags sermons
// @Accept json
// @Produce json
// @Param request body dto.SermonOutlineRequest true "Outline topic"
// @Success 200 {object} dto.GeneratedTextResponse
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Security BearerAuth
// @Router /sermons/outline [post]
func (h *sermonHandler) generateOutline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SermonOutlineRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	text, err := h.aiService.SermonOutline(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate outline")
		return
	}
	c.JSON(http.StatusOK, dto.GeneratedTextResponse{Text: text})
}
