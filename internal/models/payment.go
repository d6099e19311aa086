package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payment row in the payments table.
// Refund rows carry a negative amount and reference the original payment.
type Payment struct {
	ID                int64           `db:"id"`
	ResidentID        int64           `db:"resident_id"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentMethod     string          `db:"payment_method"`
	Description       string          `db:"description"`
	TransactionID     string          `db:"transaction_id"` // UNIQUE
	Status            string          `db:"status"`
	ProcessingFee     decimal.Decimal `db:"processing_fee"`
	NetAmount         decimal.Decimal `db:"net_amount"`
	ProcessedAt       time.Time       `db:"processed_at"`
	OriginalPaymentID *int64          `db:"original_payment_id"` // Nullable
}
