package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// communicationHandler handles the outbound message log.
type communicationHandler struct {
	commService portssvc.CommunicationSvcFacade
}

func newCommunicationHandler(cs portssvc.CommunicationSvcFacade) *communicationHandler {
	return &communicationHandler{commService: cs}
}

func registerCommunicationRoutes(rg *gin.RouterGroup, commService portssvc.CommunicationSvcFacade) {
	h := newCommunicationHandler(commService)

	comms := rg.Group("/communications")
	{
		comms.POST("", h.sendCommunication)
		comms.GET("", h.listCommunications)
	}
}

// sendCommunication godoc
// @Summary Log an outbound message to members
// @Description Delivery is simulated; the recipient count is resolved from the targeted groups at log time
// @Tags communications
// @Accept json
// @Produce json
// @Param message body dto.SendCommunicationRequest true "Message details"
// @Success 201 {object} domain.CommunicationLog
// @Failure 400 {object} map[string]string "Unknown channel"
// @Security BearerAuth
// @Router /communications [post]
func (h *communicationHandler) sendCommunication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.SendCommunicationRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	entry, err := h.commService.SendCommunication(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to log communication")
		return
	}

	logger.Info("Communication logged",
		slog.String("channel", string(entry.Channel)), slog.Int("recipients", entry.RecipientCount))
	c.JSON(http.StatusCreated, entry)
}

// listCommunications godoc
// @Summary List the scoped communication log
// @Tags communications
// @Produce json
// @Success 200 {object} dto.ListCommunicationsResponse
// @Security BearerAuth
// @Router /communications [get]
func (h *communicationHandler) listCommunications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	entries, err := h.commService.ListCommunications(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list communications")
		return
	}
	c.JSON(http.StatusOK, dto.ListCommunicationsResponse{Communications: entries})
}
