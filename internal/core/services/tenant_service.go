package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imani-cms/imani_backend/internal/apperrors"
	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	portssvc "github.com/imani-cms/imani_backend/internal/core/ports/services"
	"github.com/imani-cms/imani_backend/internal/dto"
	"github.com/imani-cms/imani_backend/internal/utils/csvio"
	"github.com/imani-cms/imani_backend/internal/utils/reporting"
)

const (
	trialPeriod        = 14 * 24 * time.Hour
	pastDueGracePeriod = 30 * 24 * time.Hour
)

// tenantService implements the owner-console tenant lifecycle and billing.
type tenantService struct {
	BaseService
	tenantRepo portrepo.TenantRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// NewTenantService creates the tenant service.
func NewTenantService(tenantRepo portrepo.TenantRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo, auditSvc: auditSvc}
}

func parsePlanTier(raw string) (domain.PlanTier, error) {
	tier := domain.PlanTier(raw)
	switch tier {
	case domain.PlanStarter, domain.PlanGrowth, domain.PlanEnterprise:
		return tier, nil
	default:
		return "", fmt.Errorf("%w: unknown plan tier %q", apperrors.ErrValidation, raw)
	}
}

func parseTenantStatus(raw string) (domain.TenantStatus, error) {
	status := domain.TenantStatus(raw)
	switch status {
	case domain.TenantActive, domain.TenantTrialing, domain.TenantPastDue, domain.TenantSuspended:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown tenant status %q", apperrors.ErrValidation, raw)
	}
}

// ParseTenantStatus validates a raw tenant status string for handlers.
func ParseTenantStatus(raw string) (domain.TenantStatus, error) {
	return parseTenantStatus(raw)
}

// ParsePlanTier validates a raw plan tier string for handlers.
func ParsePlanTier(raw string) (domain.PlanTier, error) {
	return parsePlanTier(raw)
}

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}

func (s *tenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.ListTenants(ctx)
}

func (s *tenantService) BillingSummary(ctx context.Context) (*domain.PlatformBillingSummary, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	summary := reporting.BillingSummary(tenants)
	return &summary, nil
}

var tenantCSVHeader = []string{
	"name", "subdomain", "plan_tier", "status", "mrr", "member_count", "created_at",
}

func (s *tenantService) ExportTenantsCSV(ctx context.Context, w io.Writer) error {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return err
	}
	return csvio.Export(w, tenantCSVHeader, tenants, func(t domain.Tenant) []string {
		return []string{
			t.Name, t.Subdomain, string(t.PlanTier), string(t.Status),
			t.MRR.StringFixed(2), fmt.Sprintf("%d", t.MemberCount),
			t.CreatedAt.Format("2006-01-02"),
		}
	})
}

func (s *tenantService) ProvisionTenant(ctx context.Context, actorUserID string, req dto.ProvisionTenantRequest) (*domain.Tenant, error) {
	tier, err := parsePlanTier(req.PlanTier)
	if err != nil {
		return nil, err
	}

	if _, err := s.tenantRepo.FindTenantBySubdomain(ctx, req.Subdomain); err == nil {
		return nil, fmt.Errorf("%w: subdomain %q already taken", apperrors.ErrDuplicate, req.Subdomain)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	tenant := domain.Tenant{
		TenantID:    uuid.NewString(),
		Name:        req.Name,
		Subdomain:   req.Subdomain,
		PlanTier:    tier,
		AuditFields: domain.NewAuditFields(actorUserID, now),
	}
	if req.Trial {
		trialEnd := now.Add(trialPeriod)
		tenant.Status = domain.TenantTrialing
		tenant.TrialEndsAt = &trialEnd
		tenant.MRR = decimal.Zero
	} else {
		tenant.Status = domain.TenantActive
		tenant.MRR = domain.PlanMonthlyPrice(tier)
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to provision tenant", "subdomain", req.Subdomain)
		return nil, err
	}

	s.LogInfo(ctx, "Tenant provisioned", "tenant_id", tenant.TenantID, "plan", string(tier))
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenant.TenantID, ActorID: actorUserID, Action: "tenant.provision",
		EntityType: "tenant", EntityID: tenant.TenantID, Detail: string(tier), At: now,
	})
	return &tenant, nil
}

func (s *tenantService) ChangeTenantStatus(ctx context.Context, tenantID, actorUserID string, status domain.TenantStatus) (*domain.Tenant, error) {
	if _, err := parseTenantStatus(string(status)); err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant.Status = status
	switch status {
	case domain.TenantPastDue:
		if tenant.PastDueSince == nil {
			tenant.PastDueSince = &now
		}
	case domain.TenantSuspended:
		tenant.MRR = decimal.Zero
	case domain.TenantActive:
		tenant.PastDueSince = nil
		tenant.TrialEndsAt = nil
		tenant.MRR = domain.PlanMonthlyPrice(tenant.PlanTier)
	}
	tenant.Touch(actorUserID, now)

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "tenant.status",
		EntityType: "tenant", EntityID: tenantID, Detail: string(status), At: now,
	})
	return tenant, nil
}

func (s *tenantService) ChangeTenantPlan(ctx context.Context, tenantID, actorUserID string, tier domain.PlanTier) (*domain.Tenant, error) {
	if _, err := parsePlanTier(string(tier)); err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant.PlanTier = tier
	// Suspended and trialing tenants accrue no MRR until they activate.
	if tenant.Status == domain.TenantActive || tenant.Status == domain.TenantPastDue {
		tenant.MRR = domain.PlanMonthlyPrice(tier)
	}
	tenant.Touch(actorUserID, now)

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "tenant.plan",
		EntityType: "tenant", EntityID: tenantID, Detail: string(tier), At: now,
	})
	return tenant, nil
}

// RunBillingCycle walks every tenant once: active tenants are repriced from
// their plan tier, ended trials activate and start billing, and tenants past
// due beyond the grace period are suspended.
func (s *tenantService) RunBillingCycle(ctx context.Context, actorUserID string) (*dto.BillingRunResponse, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := &dto.BillingRunResponse{}
	for _, tenant := range tenants {
		changed := false
		switch tenant.Status {
		case domain.TenantActive:
			price := domain.PlanMonthlyPrice(tenant.PlanTier)
			if !tenant.MRR.Equal(price) {
				tenant.MRR = price
				changed = true
			}
			result.TenantsBilled++
		case domain.TenantTrialing:
			if tenant.TrialEndsAt != nil && tenant.TrialEndsAt.Before(now) {
				tenant.Status = domain.TenantActive
				tenant.TrialEndsAt = nil
				tenant.MRR = domain.PlanMonthlyPrice(tenant.PlanTier)
				result.TrialsExpired++
				result.TenantsBilled++
				changed = true
			}
		case domain.TenantPastDue:
			if tenant.PastDueSince != nil && now.Sub(*tenant.PastDueSince) > pastDueGracePeriod {
				tenant.Status = domain.TenantSuspended
				tenant.MRR = decimal.Zero
				result.TenantsSuspended++
				changed = true
			} else {
				result.TenantsBilled++
			}
		}
		if changed {
			tenant.Touch(actorUserID, now)
			if err := s.tenantRepo.UpdateTenant(ctx, tenant); err != nil {
				s.LogError(ctx, err, "Failed to update tenant during billing run", "tenant_id", tenant.TenantID)
				return nil, err
			}
		}
	}

	s.LogInfo(ctx, "Billing cycle completed",
		"billed", result.TenantsBilled, "trials_expired", result.TrialsExpired, "suspended", result.TenantsSuspended)
	s.auditSvc.Record(ctx, domain.AuditLog{
		ActorID: actorUserID, Action: "billing.run",
		Detail: fmt.Sprintf("billed=%d trials_expired=%d suspended=%d",
			result.TenantsBilled, result.TrialsExpired, result.TenantsSuspended),
		At: now,
	})
	return result, nil
}
