package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	TenantID      string          `db:"tenant_id"`
	MemberID      *string         `db:"member_id"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	PaymentMethod string          `db:"payment_method"`
	Date          time.Time       `db:"date"`
	ReferenceCode string          `db:"reference_code"`
	Notes         string          `db:"notes"`
	AuditFields
}
