package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// ticketHandler handles tenant-raised support tickets.
type ticketHandler struct {
	ticketService portssvc.TicketSvcFacade
}

func newTicketHandler(ts portssvc.TicketSvcFacade) *ticketHandler {
	return &ticketHandler{ticketService: ts}
}

func registerTicketRoutes(rg *gin.RouterGroup, ticketService portssvc.TicketSvcFacade) {
	h := newTicketHandler(ticketService)

	tickets := rg.Group("/tickets")
	{
		tickets.POST("", h.raiseTicket)
		tickets.GET("", h.listTickets)
		tickets.GET("/:id", h.getTicket)
		tickets.PUT("/:id/status", h.updateTicketStatus)
	}
}

// ticketStatusFilter parses the optional status query parameter, writing the
// 400 response on an unknown value.
func ticketStatusFilter(c *gin.Context) (*domain.TicketStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status, err := services.ParseTicketStatus(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &status, true
}

// raiseTicket godoc
// @Summary Raise a support ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} domain.SupportTicket
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /tickets [post]
func (h *ticketHandler) raiseTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateTicketRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	ticket, err := h.ticketService.RaiseTicket(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to raise ticket")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// listTickets godoc
// @Summary List the scoped support tickets
// @Tags tickets
// @Produce json
// @Param status query string false "Ticket status filter"
// @Success 200 {object} dto.ListTicketsResponse
// @Security BearerAuth
// @Router /tickets [get]
func (h *ticketHandler) listTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	statusFilter, ok := ticketStatusFilter(c)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListTickets(c.Request.Context(), scope, statusFilter)
	if err != nil {
		respondError(c, logger, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, dto.ListTicketsResponse{Tickets: tickets})
}

// getTicket godoc
// @Summary Get a ticket by id
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} domain.SupportTicket
// @Failure 404 {object} map[string]string "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *ticketHandler) getTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicketByID(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve ticket")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// updateTicketStatus godoc
// @Summary Move a ticket to a new status
// @Description Resolving stamps the resolution time
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param status body dto.UpdateTicketStatusRequest true "Target status"
// @Success 200 {object} domain.SupportTicket
// @Failure 400 {object} map[string]string "Unknown status"
// @Security BearerAuth
// @Router /tickets/{id}/status [put]
func (h *ticketHandler) updateTicketStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.UpdateTicketStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	ticket, err := h.ticketService.UpdateTicketStatus(c.Request.Context(), scope, c.Param("id"), userID, domain.TicketStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to update ticket status")
		return
	}
	c.JSON(http.StatusOK, ticket)
}
