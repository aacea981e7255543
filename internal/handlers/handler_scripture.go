package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// scriptureHandler proxies the public Bible-text API.
type scriptureHandler struct {
	scriptureService portssvc.ScriptureSvc
}

func newScriptureHandler(ss portssvc.ScriptureSvc) *scriptureHandler {
	return &scriptureHandler{scriptureService: ss}
}

func registerScriptureRoutes(rg *gin.RouterGroup, scriptureService portssvc.ScriptureSvc) {
	h := newScriptureHandler(scriptureService)
	rg.GET("/scripture/:book/:chapter", h.getChapter)
}

// getChapter godoc
// @Summary Fetch the verses of one chapter
// @Tags scripture
// @Produce json
// @Param book path string true "Book name, e.g. john"
// @Param chapter path int true "Chapter number"
// @Success 200 {object} dto.ScriptureResponse
// @Failure 400 {object} map[string]string "Invalid chapter"
// @Failure 503 {object} map[string]string "Upstream unavailable"
// @Security BearerAuth
// @Router /scripture/{book}/{chapter} [get]
func (h *scriptureHandler) getChapter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chapter must be a positive integer"})
		return
	}

	resp, err := h.scriptureService.GetChapter(c.Request.Context(), c.Param("book"), chapter)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch chapter")
		return
	}
	c.JSON(http.StatusOK, resp)
}
