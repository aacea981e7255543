package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imani-cms/imani_backend/internal/core/domain"
)

// CreateTransactionRequest carries the fields for recording a ledger entry.
// Category is optional; when present it must agree with the category derived
// from Type.
type CreateTransactionRequest struct {
	MemberID      *string         `json:"memberID"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Date          *time.Time      `json:"date"`
	ReferenceCode string          `json:"referenceCode"`
	Notes         string          `json:"notes"`
}

// UpdateTransactionRequest carries a partial ledger entry update.
type UpdateTransactionRequest struct {
	MemberID      *string          `json:"memberID"`
	Amount        *decimal.Decimal `json:"amount"`
	Type          *string          `json:"type"`
	PaymentMethod *string          `json:"paymentMethod"`
	Date          *time.Time       `json:"date"`
	Notes         *string          `json:"notes"`
}

// ListTransactionsParams are the query parameters for listing the ledger.
type ListTransactionsParams struct {
	ListParams
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Type     string     `form:"type"`
	Category string     `form:"category"`
	MemberID string     `form:"memberID"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    string               `json:"nextToken,omitempty"`
}
