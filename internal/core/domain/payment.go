package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBankTransfer, PaymentMethodDigitalWallet:
		return true
	}
	return false
}

// PaymentRecordStatus is the processing outcome of a payment.
type PaymentRecordStatus string

const (
	PaymentCompleted PaymentRecordStatus = "completed"
	PaymentFailed    PaymentRecordStatus = "failed"
)

// Payment is a processed payment or refund. Refunds carry a negative Amount,
// a zero ProcessingFee and a back-reference to the original payment.
// OriginalPaymentID is a weak reference used for back-tracing only.
type Payment struct {
	ID                int64               `json:"id"`
	ResidentID        int64               `json:"residentId"` // FK -> residents.id
	Amount            decimal.Decimal     `json:"amount"`     // Signed; negative = refund
	PaymentMethod     PaymentMethod       `json:"paymentMethod"`
	Description       string              `json:"description"`
	TransactionID     string              `json:"transactionId"` // Unique (TXN-/RFD- prefixed)
	Status            PaymentRecordStatus `json:"status"`
	ProcessingFee     decimal.Decimal     `json:"processingFee"`
	NetAmount         decimal.Decimal     `json:"netAmount"` // Amount - ProcessingFee
	ProcessedAt       time.Time           `json:"processedAt"`
	OriginalPaymentID *int64              `json:"originalPaymentId,omitempty"`
}

// IsRefund reports whether the payment record is a refund.
func (p Payment) IsRefund() bool {
	return p.Amount.IsNegative()
}

// PaymentStats summarizes the payment history of one resident, or of the
// whole hostel when computed without a resident filter.
type PaymentStats struct {
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalRefunded   decimal.Decimal `json:"totalRefunded"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	PaymentCount    int             `json:"paymentCount"`
	RefundCount     int             `json:"refundCount"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
}
