package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// reportingHandler serves the derived dashboard views and the tenant audit trail.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	auditService     portssvc.AuditSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, as portssvc.AuditSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, auditService: as}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newReportingHandler(reportingService, auditService)
	reports := rg.Group("/reports")
	{
		reports.GET("/finance", h.financeReport)
		reports.GET("/demographics", h.demographicsReport)
		reports.GET("/financial-insight", h.financialInsight)
	}
	rg.GET("/audit", h.listAudit)
}

// financeReport godoc
// @Summary Income and expense summary with a monthly trend
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.FinanceReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/finance [get]
func (h *reportingHandler) financeReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	report, err := h.reportingService.FinanceReport(c.Request.Context(), scope, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to compute finance report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// demographicsReport godoc
// @Summary Membership counts grouped by status and location
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DemographicsReportResponse
// @Security BearerAuth
// @Router /reports/demographics [get]
func (h *reportingHandler) demographicsReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Demographics(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to compute demographics report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// financialInsight godoc
// @Summary AI narrative over the current finance summary
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialInsightResponse
// @Failure 503 {object} map[string]string "Collaborator unavailable"
// @Security BearerAuth
// @Router /reports/financial-insight [get]
func (h *reportingHandler) financialInsight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	insight, err := h.reportingService.FinancialInsight(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to generate financial insight")
		return
	}
	c.JSON(http.StatusOK, insight)
}

// listAudit godoc
// @Summary List the tenant's recent audit entries
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries to return" default(100)
// @Success 200 {array} domain.AuditLog
// @Security BearerAuth
// @Router /audit [get]
func (h *reportingHandler) listAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), scope, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. A false return
// means a response was already written.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a YYYY-MM-DD date"})
		return nil, false
	}
	return &t, true
}
