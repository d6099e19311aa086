package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// GetAllPayments retrieves every payment, newest first.
	GetAllPayments(ctx context.Context) ([]domain.Payment, error)

	// GetPaymentHistory retrieves a resident's payments, newest first.
	GetPaymentHistory(ctx context.Context, residentID int64) ([]domain.Payment, error)

	// GetPaymentStats summarizes payments for one resident, or hostel-wide
	// when residentID is nil.
	GetPaymentStats(ctx context.Context, residentID *int64) (*domain.PaymentStats, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// ProcessPayment charges a resident: validates the amount, applies the
	// processing fee, persists the payment and marks the resident paid in a
	// single transaction. Fails with ErrProcessingFailure when the simulated
	// gateway declines.
	ProcessPayment(ctx context.Context, req dto.ProcessPaymentRequest) (*domain.Payment, error)

	// RefundPayment creates a negative-amount payment record back-referencing
	// the original completed payment.
	RefundPayment(ctx context.Context, paymentID int64, amount decimal.Decimal) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
