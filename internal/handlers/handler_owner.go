package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// ownerHandler handles the platform owner console: tenant lifecycle, billing
// and the cross-tenant support and audit queues.
type ownerHandler struct {
	tenantService portssvc.TenantSvcFacade
	ticketService portssvc.TicketSvcFacade
	auditService  portssvc.AuditSvcFacade
}

func newOwnerHandler(ts portssvc.TenantSvcFacade, tks portssvc.TicketSvcFacade, as portssvc.AuditSvcFacade) *ownerHandler {
	return &ownerHandler{tenantService: ts, ticketService: tks, auditService: as}
}

func registerOwnerRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, ticketService portssvc.TicketSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newOwnerHandler(tenantService, ticketService, auditService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.provisionTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/export", h.exportTenants)
		tenants.GET("/:id", h.getTenant)
		tenants.PUT("/:id/status", h.changeTenantStatus)
		tenants.PUT("/:id/plan", h.changeTenantPlan)
	}

	billing := rg.Group("/billing")
	{
		billing.GET("/summary", h.billingSummary)
		billing.POST("/run", h.runBillingCycle)
	}

	rg.GET("/tickets", h.listAllTickets)
	rg.GET("/audit", h.listAllAuditLogs)
}

// provisionTenant godoc
// @Summary Provision a new parish tenant
// @Description Subdomains are unique across the platform; trial tenants accrue no MRR until activated
// @Tags owner
// @Accept json
// @Produce json
// @Param tenant body dto.ProvisionTenantRequest true "Tenant details"
// @Success 201 {object} domain.Tenant
// @Failure 409 {object} map[string]string "Subdomain already taken"
// @Security BearerAuth
// @Router /owner/tenants [post]
func (h *ownerHandler) provisionTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.ProvisionTenantRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	tenant, err := h.tenantService.ProvisionTenant(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to provision tenant")
		return
	}

	logger.Info("Tenant provisioned",
		slog.String("tenant_id", tenant.TenantID), slog.String("subdomain", tenant.Subdomain))
	c.JSON(http.StatusCreated, tenant)
}

// listTenants godoc
// @Summary List all tenants
// @Tags owner
// @Produce json
// @Success 200 {object} dto.ListTenantsResponse
// @Security BearerAuth
// @Router /owner/tenants [get]
func (h *ownerHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenants, err := h.tenantService.ListTenants(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, dto.ListTenantsResponse{Tenants: tenants})
}

// getTenant godoc
// @Summary Get a tenant by id
// @Tags owner
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} domain.Tenant
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /owner/tenants/{id} [get]
func (h *ownerHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve tenant")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// changeTenantStatus godoc
// @Summary Move a tenant to a new lifecycle status
// @Description Suspension zeroes MRR; reactivation restores the plan price and clears past-due markers
// @Tags owner
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param status body dto.ChangeTenantStatusRequest true "Target status"
// @Success 200 {object} domain.Tenant
// @Failure 400 {object} map[string]string "Unknown status"
// @Security BearerAuth
// @Router /owner/tenants/{id}/status [put]
func (h *ownerHandler) changeTenantStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.ChangeTenantStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	tenant, err := h.tenantService.ChangeTenantStatus(c.Request.Context(), c.Param("id"), userID, domain.TenantStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to change tenant status")
		return
	}

	logger.Info("Tenant status changed",
		slog.String("tenant_id", tenant.TenantID), slog.String("status", string(tenant.Status)))
	c.JSON(http.StatusOK, tenant)
}

// changeTenantPlan godoc
// @Summary Move a tenant to a new plan tier
// @Tags owner
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param plan body dto.ChangeTenantPlanRequest true "Target plan tier"
// @Success 200 {object} domain.Tenant
// @Failure 400 {object} map[string]string "Unknown plan tier"
// @Security BearerAuth
// @Router /owner/tenants/{id}/plan [put]
func (h *ownerHandler) changeTenantPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.ChangeTenantPlanRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	tenant, err := h.tenantService.ChangeTenantPlan(c.Request.Context(), c.Param("id"), userID, domain.PlanTier(req.PlanTier))
	if err != nil {
		respondError(c, logger, err, "Failed to change tenant plan")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// exportTenants godoc
// @Summary Export the tenant registry as CSV
// @Tags owner
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Security BearerAuth
// @Router /owner/tenants/export [get]
func (h *ownerHandler) exportTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="tenants.csv"`)
	if err := h.tenantService.ExportTenantsCSV(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Tenant CSV export failed", slog.String("error", err.Error()))
	}
}

// billingSummary godoc
// @Summary Platform billing aggregate
// @Tags owner
// @Produce json
// @Success 200 {object} domain.PlatformBillingSummary
// @Security BearerAuth
// @Router /owner/billing/summary [get]
func (h *ownerHandler) billingSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.tenantService.BillingSummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute billing summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// runBillingCycle godoc
// @Summary Run one billing cycle
// @Description Reprices active tenants, activates ended trials and suspends tenants past the grace period
// @Tags owner
// @Produce json
// @Success 200 {object} dto.BillingRunResponse
// @Security BearerAuth
// @Router /owner/billing/run [post]
func (h *ownerHandler) runBillingCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}

	result, err := h.tenantService.RunBillingCycle(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Billing cycle failed")
		return
	}

	logger.Info("Billing cycle ran",
		slog.Int("billed", result.TenantsBilled), slog.Int("suspended", result.TenantsSuspended))
	c.JSON(http.StatusOK, result)
}

// listAllTickets godoc
// @Summary List support tickets across all tenants
// @Tags owner
// @Produce json
// @Param status query string false "Ticket status filter"
// @Success 200 {object} dto.ListTicketsResponse
// @Security BearerAuth
// @Router /owner/tickets [get]
func (h *ownerHandler) listAllTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statusFilter, ok := ticketStatusFilter(c)
	if !ok {
		return
	}
	tickets, err := h.ticketService.ListTickets(c.Request.Context(), domain.TenantScopeAll, statusFilter)
	if err != nil {
		respondError(c, logger, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, dto.ListTicketsResponse{Tickets: tickets})
}

// listAllAuditLogs godoc
// @Summary List the audit trail across all tenants
// @Tags owner
// @Produce json
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {object} dto.ListAuditLogsResponse
// @Security BearerAuth
// @Router /owner/audit [get]
func (h *ownerHandler) listAllAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), domain.TenantScopeAll, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{Logs: logs})
}
