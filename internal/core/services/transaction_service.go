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
	"github.com/imani-cms/imani_backend/internal/utils"
)

// transactionService implements the tithe/offering/expense ledger.
type transactionService struct {
	BaseService
	txnRepo  portrepo.TransactionRepositoryFacade
	auditSvc portssvc.AuditSvcFacade
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// NewTransactionService creates the ledger service.
func NewTransactionService(txnRepo portrepo.TransactionRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, auditSvc: auditSvc}
}

// resolveTypeAndCategory validates the transaction type and derives its
// category. An explicit category that disagrees with the derived one is a
// validation error; the type is the single source of truth.
func resolveTypeAndCategory(rawType, rawCategory string) (domain.TransactionType, domain.TransactionCategory, error) {
	txnType := domain.TransactionType(rawType)
	category, ok := domain.CategoryForType(txnType)
	if !ok {
		return "", "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, rawType)
	}
	if rawCategory != "" && domain.TransactionCategory(rawCategory) != category {
		return "", "", fmt.Errorf("%w: category %q does not match type %q", apperrors.ErrValidation, rawCategory, rawType)
	}
	return txnType, category, nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, tenantID, actorUserID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType, category, err := resolveTypeAndCategory(req.Type, req.Category)
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	referenceCode := req.ReferenceCode
	if referenceCode == "" {
		referenceCode, err = utils.GenerateReferenceCode(date)
		if err != nil {
			s.LogError(ctx, err, "Failed to generate reference code")
			return nil, err
		}
	} else if _, err := s.txnRepo.FindTransactionByReference(ctx, domain.TenantScopeAll, referenceCode); err == nil {
		return nil, fmt.Errorf("%w: reference code %q already used", apperrors.ErrDuplicate, referenceCode)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		TenantID:      tenantID,
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		Type:          txnType,
		Category:      category,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Date:          date,
		ReferenceCode: referenceCode,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(actorUserID, now),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "tenant_id", tenantID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: tenantID, ActorID: actorUserID, Action: "transaction.record",
		EntityType: "transaction", EntityID: txn.TransactionID,
		Detail: fmt.Sprintf("%s %s", txn.Type, txn.Amount.String()), At: now,
	})
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, scope domain.TenantScope, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, scope, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, scope domain.TenantScope, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	filter := portrepo.TransactionListFilter{
		From:      params.From,
		To:        params.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Type != "" {
		txnType := domain.TransactionType(params.Type)
		if _, ok := domain.CategoryForType(txnType); !ok {
			return nil, "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, params.Type)
		}
		filter.Type = &txnType
	}
	if params.Category != "" {
		category := domain.TransactionCategory(params.Category)
		if category != domain.CategoryIncome && category != domain.CategoryExpense {
			return nil, "", fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, params.Category)
		}
		filter.Category = &category
	}
	if params.MemberID != "" {
		filter.MemberID = &params.MemberID
	}
	return s.txnRepo.ListTransactions(ctx, scope, filter)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, scope domain.TenantScope, transactionID, actorUserID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, scope, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txnType, category, err := resolveTypeAndCategory(*req.Type, "")
		if err != nil {
			return nil, err
		}
		txn.Type = txnType
		txn.Category = category
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.MemberID != nil {
		txn.MemberID = req.MemberID
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.Touch(actorUserID, time.Now())

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: txn.TenantID, ActorID: actorUserID, Action: "transaction.update",
		EntityType: "transaction", EntityID: transactionID, At: time.Now(),
	})
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, scope domain.TenantScope, transactionID, actorUserID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, scope, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, scope, transactionID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, domain.AuditLog{
		TenantID: txn.TenantID, ActorID: actorUserID, Action: "transaction.delete",
		EntityType: "transaction", EntityID: transactionID, At: time.Now(),
	})
	return nil
}
