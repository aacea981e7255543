package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the concrete kind of a ledger entry.
type TransactionType string

const (
	TxnTithe       TransactionType = "TITHE"
	TxnOffering    TransactionType = "OFFERING"
	TxnDonation    TransactionType = "DONATION"
	TxnPledge      TransactionType = "PLEDGE"
	TxnExpense     TransactionType = "EXPENSE"
	TxnSalary      TransactionType = "SALARY"
	TxnUtilities   TransactionType = "UTILITIES"
	TxnMaintenance TransactionType = "MAINTENANCE"
)

// TransactionCategory is the aggregate sign convention of a ledger entry.
type TransactionCategory string

const (
	CategoryIncome  TransactionCategory = "INCOME"
	CategoryExpense TransactionCategory = "EXPENSE"
)

// CategoryForType returns the category a transaction type belongs to.
// The type is the single source of truth: contribution types are income,
// everything else is expense. Callers that carry an explicit category must
// agree with this mapping.
func CategoryForType(t TransactionType) (TransactionCategory, bool) {
	switch t {
	case TxnTithe, TxnOffering, TxnDonation, TxnPledge:
		return CategoryIncome, true
	case TxnExpense, TxnSalary, TxnUtilities, TxnMaintenance:
		return CategoryExpense, true
	default:
		return "", false
	}
}

// PaymentMethod is how the money moved.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCheque       PaymentMethod = "CHEQUE"
	PaymentMobileMoney  PaymentMethod = "MOBILE_MONEY"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCard         PaymentMethod = "CARD"
)

// Transaction represents one tithe/offering/expense ledger entry for a tenant.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary key (UUID)
	TenantID      string              `json:"tenantID"`
	MemberID      *string             `json:"memberID,omitempty"` // Optional contributor reference
	Amount        decimal.Decimal     `json:"amount"`             // Non-negative
	Type          TransactionType     `json:"type"`
	Category      TransactionCategory `json:"category"` // Always derived from Type
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	Date          time.Time           `json:"date"`
	ReferenceCode string              `json:"referenceCode"` // Unique per transaction, generated if absent
	Notes         string              `json:"notes,omitempty"`
	AuditFields
}
