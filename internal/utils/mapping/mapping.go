// Package mapping converts between domain entities and their database row
// models.
package mapping

import (
	"database/sql"

	"github.com/imani-cms/imani_backend/internal/core/domain"
	"github.com/imani-cms/imani_backend/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToModelMember converts a domain Member to its row model.
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:       d.MemberID,
		TenantID:       d.TenantID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		Location:       d.Location,
		Groups:         d.Groups,
		Status:         string(d.Status),
		MembershipType: string(d.MembershipType),
		JoinDate:       d.JoinDate,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainMember converts a member row to the domain entity.
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:       m.MemberID,
		TenantID:       m.TenantID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		Location:       m.Location,
		Groups:         m.Groups,
		Status:         domain.MemberStatus(m.Status),
		MembershipType: domain.MembershipType(m.MembershipType),
		JoinDate:       m.JoinDate,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToDomainMemberSlice converts member rows to domain entities.
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}

// ToModelTransaction converts a domain Transaction to its row model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TenantID:      d.TenantID,
		MemberID:      d.MemberID,
		Amount:        d.Amount,
		Type:          string(d.Type),
		Category:      string(d.Category),
		PaymentMethod: string(d.PaymentMethod),
		Date:          d.Date,
		ReferenceCode: d.ReferenceCode,
		Notes:         d.Notes,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainTransaction converts a transaction row to the domain entity.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TenantID:      m.TenantID,
		MemberID:      m.MemberID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Category:      domain.TransactionCategory(m.Category),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Date:          m.Date,
		ReferenceCode: m.ReferenceCode,
		Notes:         m.Notes,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts transaction rows to domain entities.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelTenant converts a domain Tenant to its row model.
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:      d.TenantID,
		Name:          d.Name,
		Subdomain:     d.Subdomain,
		PlanTier:      string(d.PlanTier),
		Status:        string(d.Status),
		MRR:           d.MRR,
		MemberCount:   d.MemberCount,
		StorageUsedMB: d.StorageUsedMB,
		TrialEndsAt:   d.TrialEndsAt,
		PastDueSince:  d.PastDueSince,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainTenant converts a tenant row to the domain entity.
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:      m.TenantID,
		Name:          m.Name,
		Subdomain:     m.Subdomain,
		PlanTier:      domain.PlanTier(m.PlanTier),
		Status:        domain.TenantStatus(m.Status),
		MRR:           m.MRR,
		MemberCount:   m.MemberCount,
		StorageUsedMB: m.StorageUsedMB,
		TrialEndsAt:   m.TrialEndsAt,
		PastDueSince:  m.PastDueSince,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainTenantSlice converts tenant rows to domain entities.
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}

// ToModelUser converts a domain User to its row model.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		MemberID:     d.MemberID,
		AuditFields:  toModelAudit(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
	if d.TenantID != "" {
		m.TenantID = sql.NullString{String: d.TenantID, Valid: true}
	}
	if d.AuthProvider != "" {
		m.AuthProvider = sql.NullString{String: d.AuthProvider, Valid: true}
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: d.ProviderUserID, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a user row to the domain entity.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		TenantID:     m.TenantID.String,
		Username:     m.Username,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		MemberID:     m.MemberID,
		AuditFields:  toDomainAudit(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
	d.AuthProvider = m.AuthProvider.String
	d.ProviderUserID = m.ProviderUserID.String
	d.RefreshTokenHash = m.RefreshTokenHash.String
	if m.RefreshTokenExpiryTime.Valid {
		expiry := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &expiry
	}
	return d
}

// ToDomainUserSlice converts user rows to domain entities.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToModelEvent converts a domain ChurchEvent to its row model.
func ToModelEvent(d domain.ChurchEvent) models.ChurchEvent {
	return models.ChurchEvent{
		EventID:     d.EventID,
		TenantID:    d.TenantID,
		Title:       d.Title,
		Type:        string(d.Type),
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		Location:    d.Location,
		Description: d.Description,
		Attendance:  d.Attendance,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainEvent converts an event row to the domain entity.
func ToDomainEvent(m models.ChurchEvent) domain.ChurchEvent {
	return domain.ChurchEvent{
		EventID:     m.EventID,
		TenantID:    m.TenantID,
		Title:       m.Title,
		Type:        domain.EventType(m.Type),
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		Location:    m.Location,
		Description: m.Description,
		Attendance:  m.Attendance,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainEventSlice converts event rows to domain entities.
func ToDomainEventSlice(ms []models.ChurchEvent) []domain.ChurchEvent {
	ds := make([]domain.ChurchEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
