package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// eventHandler handles HTTP requests for church events and roll call.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.POST("/:id/rollcall", h.markRollCall)
	}
}

// createEvent godoc
// @Summary Schedule a church event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} domain.ChurchEvent
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// listEvents godoc
// @Summary List scheduled events
// @Tags events
// @Produce json
// @Success 200 {object} dto.ListEventsResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ListEventsResponse{Events: events})
}

// getEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.ChurchEvent
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} domain.ChurchEvent
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), scope, c.Param("id"), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// deleteEvent godoc
// @Summary Remove an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "Event removed"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// markRollCall godoc
// @Summary Mark members present at an event
// @Description Already-present members are ignored; the response reports how many were newly added
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param rollcall body dto.RollCallRequest true "Member ids to mark present"
// @Success 200 {object} dto.RollCallResponse
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/rollcall [post]
func (h *eventHandler) markRollCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.RollCallRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	resp, err := h.eventService.MarkRollCall(c.Request.Context(), scope, c.Param("id"), userID, req.MemberIDs)
	if err != nil {
		respondError(c, logger, err, "Failed to mark roll call")
		return
	}

	logger.Info("Roll call recorded",
		slog.String("event_id", resp.EventID), slog.Int("added", resp.Added))
	c.JSON(http.StatusOK, resp)
}
