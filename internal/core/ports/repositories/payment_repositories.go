package repositories

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// ListPayments retrieves all payments, newest first.
	ListPayments(ctx context.Context) ([]domain.Payment, error)

	// ListPaymentsByResident retrieves a resident's payments, newest first.
	ListPaymentsByResident(ctx context.Context, residentID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a payment record and returns the generated ID.
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)

	// SavePaymentMarkingResidentPaid persists the payment record and updates
	// the resident's payment status to paid within a single database
	// transaction. Either both changes apply or neither does.
	SavePaymentMarkingResidentPaid(ctx context.Context, payment domain.Payment) (int64, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
