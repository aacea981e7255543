package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/middleware"
)

// budgetHandler handles budgets and recurring finance items.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.DELETE("/:id", h.deleteBudget)
	}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("/expenses", h.createRecurringExpense)
		recurring.GET("/expenses", h.listRecurringExpenses)
		recurring.DELETE("/expenses/:id", h.deleteRecurringExpense)
		recurring.POST("/contributions", h.createRecurringContribution)
		recurring.GET("/contributions", h.listRecurringContributions)
		recurring.DELETE("/contributions/:id", h.deleteRecurringContribution)
	}
}

// createBudget godoc
// @Summary Plan a spending envelope
// @Description The category must be an expense transaction type
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} domain.Budget
// @Failure 400 {object} map[string]string "Invalid category or period"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// listBudgets godoc
// @Summary List the scoped budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} domain.Budget
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// deleteBudget godoc
// @Summary Remove a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204 "Budget removed"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

// createRecurringExpense godoc
// @Summary Register a monthly recurring expense
// @Tags budgets
// @Accept json
// @Produce json
// @Param expense body dto.CreateRecurringExpenseRequest true "Recurring expense"
// @Success 201 {object} domain.RecurringExpense
// @Failure 400 {object} map[string]string "Invalid type or day of month"
// @Security BearerAuth
// @Router /recurring/expenses [post]
func (h *budgetHandler) createRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateRecurringExpenseRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.budgetService.CreateRecurringExpense(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create recurring expense")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// listRecurringExpenses godoc
// @Summary List the scoped recurring expenses
// @Tags budgets
// @Produce json
// @Success 200 {array} domain.RecurringExpense
// @Security BearerAuth
// @Router /recurring/expenses [get]
func (h *budgetHandler) listRecurringExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	items, err := h.budgetService.ListRecurringExpenses(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list recurring expenses")
		return
	}
	c.JSON(http.StatusOK, items)
}

// deleteRecurringExpense godoc
// @Summary Remove a recurring expense
// @Tags budgets
// @Param id path string true "Recurring item ID"
// @Success 204 "Recurring expense removed"
// @Security BearerAuth
// @Router /recurring/expenses/{id} [delete]
func (h *budgetHandler) deleteRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteRecurringExpense(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete recurring expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// createRecurringContribution godoc
// @Summary Register a member's standing pledge
// @Tags budgets
// @Accept json
// @Produce json
// @Param pledge body dto.CreateRecurringContributionRequest true "Recurring contribution"
// @Success 201 {object} domain.RecurringContribution
// @Failure 400 {object} map[string]string "Invalid type or frequency"
// @Security BearerAuth
// @Router /recurring/contributions [post]
func (h *budgetHandler) createRecurringContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	var req dto.CreateRecurringContributionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.budgetService.CreateRecurringContribution(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create recurring contribution")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// listRecurringContributions godoc
// @Summary List the scoped recurring contributions
// @Tags budgets
// @Produce json
// @Success 200 {array} domain.RecurringContribution
// @Security BearerAuth
// @Router /recurring/contributions [get]
func (h *budgetHandler) listRecurringContributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	items, err := h.budgetService.ListRecurringContributions(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to list recurring contributions")
		return
	}
	c.JSON(http.StatusOK, items)
}

// deleteRecurringContribution godoc
// @Summary Remove a recurring contribution
// @Tags budgets
// @Param id path string true "Recurring item ID"
// @Success 204 "Recurring contribution removed"
// @Security BearerAuth
// @Router /recurring/contributions/{id} [delete]
func (h *budgetHandler) deleteRecurringContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireIdentity(c)
	if !ok {
		return
	}
	scope, ok := requireScope(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteRecurringContribution(c.Request.Context(), scope, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete recurring contribution")
		return
	}
	c.Status(http.StatusNoContent)
}
