package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
)

type budgetService struct {
	BaseService
	budgetRepo portrepo.BudgetRepository
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// NewBudgetService creates the budget service.
func NewBudgetService(budgetRepo portrepo.BudgetRepository, auditSvc portssvc.AuditSvcFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, auditSvc: auditSvc}
}

// typeInCategory checks that a raw transaction type exists and carries the
// expected aggregate category.
func typeInCategory(raw string, want domain.TransactionCategory) (domain.TransactionType, error) {
	txType := domain.TransactionType(raw)
	category, ok := domain.CategoryForType(txType)
	if !ok {
		return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, raw)
	}
	if category != want {
		return "", fmt.Errorf("%w: type %q is not an %s type", apperrors.ErrValidation, raw, want)
	}
	return txType, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, tenantID, actorUserID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	category, err := typeInCategory(req.Category, domain.CategoryExpense)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount cannot be negative", apperrors.ErrValidation)
	}
	if !req.PeriodEnd.After(req.PeriodStart) {
		return nil, fmt.Errorf("%w: period end must be after period start", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		TenantID:    tenantID,
		Name:        req.Name,
		Category:    category,
		Amount:      req.Amount,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "budget.create",
		EntityType: "budget", EntityID: budget.BudgetID, Detail: req.Name, At: now,
	})
	return &budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, scope domain.TenantScope) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, scope)
}

func (s *budgetService) DeleteBudget(ctx context.Context, scope domain.TenantScope, budgetID, actorUserID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, scope, budgetID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, domain.AuditLog{
		ActorID: actorUserID, Action: "budget.delete",
		EntityType: "budget", EntityID: budgetID, At: time.Now(),
	})
	return nil
}

func (s *budgetService) CreateRecurringExpense(ctx context.Context, tenantID, actorUserID string, req dto.CreateRecurringExpenseRequest) (*domain.RecurringExpense, error) {
	txType, err := typeInCategory(req.Type, domain.CategoryExpense)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}
	if req.DayOfMonth < 1 || req.DayOfMonth > 28 {
		return nil, fmt.Errorf("%w: day of month must be between 1 and 28", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.RecurringExpense{
		RecurringID: uuid.NewString(),
		TenantID:    tenantID,
		Name:        req.Name,
		Type:        txType,
		Amount:      req.Amount,
		DayOfMonth:  req.DayOfMonth,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}
	if err := s.budgetRepo.SaveRecurringExpense(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *budgetService) ListRecurringExpenses(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringExpense, error) {
	return s.budgetRepo.ListRecurringExpenses(ctx, scope)
}

func (s *budgetService) DeleteRecurringExpense(ctx context.Context, scope domain.TenantScope, recurringID, actorUserID string) error {
	return s.budgetRepo.DeleteRecurringExpense(ctx, scope, recurringID)
}

func (s *budgetService) CreateRecurringContribution(ctx context.Context, tenantID, actorUserID string, req dto.CreateRecurringContributionRequest) (*domain.RecurringContribution, error) {
	txType, err := typeInCategory(req.Type, domain.CategoryIncome)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}
	frequency := domain.ContributionFrequency(req.Frequency)
	if frequency != domain.FrequencyWeekly && frequency != domain.FrequencyMonthly {
		return nil, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, req.Frequency)
	}

	now := time.Now()
	item := domain.RecurringContribution{
		RecurringID: uuid.NewString(),
		TenantID:    tenantID,
		MemberID:    req.MemberID,
		Type:        txType,
		Amount:      req.Amount,
		Frequency:   frequency,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}
	if err := s.budgetRepo.SaveRecurringContribution(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *budgetService) ListRecurringContributions(ctx context.Context, scope domain.TenantScope) ([]domain.RecurringContribution, error) {
	return s.budgetRepo.ListRecurringContributions(ctx, scope)
}

func (s *budgetService) DeleteRecurringContribution(ctx context.Context, scope domain.TenantScope, recurringID, actorUserID string) error {
	return s.budgetRepo.DeleteRecurringContribution(ctx, scope, recurringID)
}
