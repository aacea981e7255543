// Package seed loads a demo dataset into the repositories when the in-memory
// driver is selected. Every run produces fresh ids; the usernames and the
// shared demo password are stable so the API is explorable immediately.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/utils"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "Password123!"

const seedActor = "seed"

// Run loads the demo tenants, accounts and records. It is not idempotent and
// expects empty stores.
func Run(ctx context.Context, repos *portrepo.RepositoryProvider, logger *slog.Logger) error {
	now := time.Now()

	passwordHash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	grace := domain.Tenant{
		TenantID:      uuid.NewString(),
		Name:          "Grace Chapel Accra",
		Subdomain:     "grace-accra",
		PlanTier:      domain.PlanGrowth,
		Status:        domain.TenantActive,
		MRR:           domain.PlanMonthlyPrice(domain.PlanGrowth),
		StorageUsedMB: 120,
		AuditFields:   domain.NewAuditFields(seedActor, now),
	}
	trialEnds := now.Add(10 * 24 * time.Hour)
	hope := domain.Tenant{
		TenantID:    uuid.NewString(),
		Name:        "Hope Community Kumasi",
		Subdomain:   "hope-kumasi",
		PlanTier:    domain.PlanStarter,
		Status:      domain.TenantTrialing,
		MRR:         decimal.Zero,
		TrialEndsAt: &trialEnds,
		AuditFields: domain.NewAuditFields(seedActor, now),
	}
	for _, t := range []domain.Tenant{grace, hope} {
		if err := repos.TenantRepo.SaveTenant(ctx, t); err != nil {
			return fmt.Errorf("seeding tenant %s: %w", t.Subdomain, err)
		}
	}

	accounts := []struct {
		username string
		name     string
		role     domain.Role
		tenantID string
	}{
		{"owner", "Platform Owner", domain.RoleSystemOwner, ""},
		{"admin", "Abena Mensah", domain.RoleAdmin, grace.TenantID},
		{"pastor", "Rev. Kwame Asante", domain.RolePastor, grace.TenantID},
		{"treasurer", "Yaw Boateng", domain.RoleTreasurer, grace.TenantID},
		{"secretary", "Esi Owusu", domain.RoleSecretary, grace.TenantID},
		{"member", "Kofi Adjei", domain.RoleMember, grace.TenantID},
		{"hope-admin", "Akosua Darko", domain.RoleAdmin, hope.TenantID},
	}
	for _, a := range accounts {
		user := domain.User{
			UserID:       uuid.NewString(),
			TenantID:     a.tenantID,
			Username:     a.username,
			Name:         a.name,
			Email:        a.username + "@imani.example",
			PasswordHash: passwordHash,
			Role:         a.role,
			AuditFields:  domain.NewAuditFields(seedActor, now),
		}
		if err := repos.UserRepo.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("seeding user %s: %w", a.username, err)
		}
	}

	memberSpecs := []struct {
		first, last, location string
		status                domain.MemberStatus
		groups                []string
	}{
		{"Ama", "Serwaa", "Osu", domain.MemberActive, []string{"Choir", "Women's Fellowship"}},
		{"Kojo", "Antwi", "Labadi", domain.MemberActive, []string{"Ushers"}},
		{"Efua", "Mensima", "Osu", domain.MemberYouth, []string{"Youth"}},
		{"Nana", "Yeboah", "Teshie", domain.MemberVisitor, nil},
		{"Adwoa", "Badu", "Labadi", domain.MemberInactive, []string{"Choir"}},
	}
	memberIDs := make([]string, 0, len(memberSpecs))
	for i, m := range memberSpecs {
		member := domain.Member{
			MemberID:       uuid.NewString(),
			TenantID:       grace.TenantID,
			FirstName:      m.first,
			LastName:       m.last,
			Email:          fmt.Sprintf("%s.%s@example.com", m.first, m.last),
			Location:       m.location,
			Groups:         m.groups,
			Status:         m.status,
			MembershipType: domain.MembershipRegular,
			JoinDate:       now.AddDate(0, -(i + 1), 0),
			AuditFields:    domain.NewAuditFields(seedActor, now),
		}
		if err := repos.MemberRepo.SaveMember(ctx, member); err != nil {
			return fmt.Errorf("seeding member %s: %w", member.FullName(), err)
		}
		memberIDs = append(memberIDs, member.MemberID)
	}
	grace.MemberCount = len(memberSpecs)
	if err := repos.TenantRepo.UpdateTenant(ctx, grace); err != nil {
		return fmt.Errorf("updating tenant member count: %w", err)
	}

	ledger := []struct {
		amount float64
		t      domain.TransactionType
		method domain.PaymentMethod
		member *string
		daysAgo int
	}{
		{250, domain.TxnTithe, domain.PaymentMobileMoney, &memberIDs[0], 7},
		{120, domain.TxnOffering, domain.PaymentCash, nil, 7},
		{500, domain.TxnDonation, domain.PaymentBankTransfer, &memberIDs[1], 21},
		{80, domain.TxnTithe, domain.PaymentMobileMoney, &memberIDs[2], 35},
		{300, domain.TxnUtilities, domain.PaymentBankTransfer, nil, 14},
		{900, domain.TxnSalary, domain.PaymentBankTransfer, nil, 30},
	}
	for _, e := range ledger {
		date := now.AddDate(0, 0, -e.daysAgo)
		category, _ := domain.CategoryForType(e.t)
		ref, err := utils.GenerateReferenceCode(date)
		if err != nil {
			return fmt.Errorf("generating reference code: %w", err)
		}
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			TenantID:      grace.TenantID,
			MemberID:      e.member,
			Amount:        decimal.NewFromFloat(e.amount),
			Type:          e.t,
			Category:      category,
			PaymentMethod: e.method,
			Date:          date,
			ReferenceCode: ref,
			AuditFields:   domain.NewAuditFields(seedActor, now),
		}
		if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("seeding transaction %s: %w", ref, err)
		}
	}

	sundayService := domain.ChurchEvent{
		EventID:     uuid.NewString(),
		TenantID:    grace.TenantID,
		Title:       "Sunday Service",
		Type:        domain.EventService,
		StartsAt:    now.AddDate(0, 0, -2),
		Location:    "Main Sanctuary",
		Attendance:  memberIDs[:3],
		AuditFields: domain.NewAuditFields(seedActor, now),
	}
	bibleStudy := domain.ChurchEvent{
		EventID:     uuid.NewString(),
		TenantID:    grace.TenantID,
		Title:       "Midweek Bible Study",
		Type:        domain.EventBibleStudy,
		StartsAt:    now.AddDate(0, 0, 3),
		Location:    "Fellowship Hall",
		AuditFields: domain.NewAuditFields(seedActor, now),
	}
	for _, ev := range []domain.ChurchEvent{sundayService, bibleStudy} {
		if err := repos.EventRepo.SaveEvent(ctx, ev); err != nil {
			return fmt.Errorf("seeding event %s: %w", ev.Title, err)
		}
	}

	sermon := domain.Sermon{
		SermonID:     uuid.NewString(),
		TenantID:     grace.TenantID,
		Title:        "Faithful in Little",
		Speaker:      "Rev. Kwame Asante",
		ScriptureRef: "Luke 16:10-13",
		Series:       "Stewardship",
		Date:         now.AddDate(0, 0, -2),
		Tags:         []string{"stewardship", "giving"},
		AuditFields:  domain.NewAuditFields(seedActor, now),
	}
	if err := repos.SermonRepo.SaveSermon(ctx, sermon); err != nil {
		return fmt.Errorf("seeding sermon: %w", err)
	}

	logger.Info("Demo data seeded",
		"tenants", 2,
		"users", len(accounts),
		"members", len(memberSpecs),
		"transactions", len(ledger))
	return nil
}
