package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// Gateway simulation defaults, overridable through PaymentServiceOption.
const (
	defaultFailureRate = 0.05
	defaultFeeRate     = "0.029"
)

type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	residentRepo portsrepo.ResidentRepositoryFacade
	failureRate  float64
	feeRate      decimal.Decimal
	randFloat    func() float64
}

// PaymentServiceOption configures optional payment service behaviour.
type PaymentServiceOption func(*paymentService)

// WithFailureRate sets the simulated gateway decline probability.
func WithFailureRate(rate float64) PaymentServiceOption {
	return func(s *paymentService) {
		s.failureRate = rate
	}
}

// WithFeeRate sets the processing fee rate applied to charges.
func WithFeeRate(rate decimal.Decimal) PaymentServiceOption {
	return func(s *paymentService) {
		s.feeRate = rate
	}
}

// WithRandSource replaces the random source used for decline simulation.
// Tests use this to force deterministic outcomes.
func WithRandSource(randFloat func() float64) PaymentServiceOption {
	return func(s *paymentService) {
		s.randFloat = randFloat
	}
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, residentRepo portsrepo.ResidentRepositoryFacade, opts ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
		failureRate:  defaultFailureRate,
		feeRate:      decimal.RequireFromString(defaultFeeRate),
		randFloat:    rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// ProcessPayment charges a resident. The processing fee is deducted from the
// charged amount, the payment record is persisted and the resident is marked
// paid in one transaction. A simulated gateway decline surfaces as
// ErrProcessingFailure without touching any state.
func (s *paymentService) ProcessPayment(ctx context.Context, req dto.ProcessPaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(req.PaymentMethod)) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	if _, err := s.residentRepo.FindResidentByID(ctx, req.ResidentID); err != nil {
		return nil, err
	}

	if s.randFloat() < s.failureRate {
		s.LogInfo(ctx, "payment declined by gateway", "residentID", req.ResidentID, "amount", req.Amount.String())
		return nil, fmt.Errorf("%w: payment gateway declined the charge", apperrors.ErrProcessingFailure)
	}

	fee := req.Amount.Mul(s.feeRate).Round(2)
	payment := domain.Payment{
		ResidentID:    req.ResidentID,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Description:   req.Description,
		TransactionID: "TXN-" + uuid.NewString(),
		Status:        domain.PaymentCompleted,
		ProcessingFee: fee,
		NetAmount:     req.Amount.Sub(fee),
		ProcessedAt:   time.Now(),
	}

	id, err := s.paymentRepo.SavePaymentMarkingResidentPaid(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "failed to persist payment", "residentID", req.ResidentID)
		return nil, err
	}
	payment.ID = id

	s.LogInfo(ctx, "payment processed",
		"paymentID", id,
		"residentID", payment.ResidentID,
		"transactionID", payment.TransactionID,
		"netAmount", payment.NetAmount.String(),
	)
	return &payment, nil
}

// RefundPayment records a refund against a completed payment. The refund is
// a separate payment row with a negative amount, no processing fee and a
// back-reference to the original.
func (s *paymentService) RefundPayment(ctx context.Context, paymentID int64, amount decimal.Decimal) (*domain.Payment, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: refund amount must be positive", apperrors.ErrValidation)
	}

	original, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.PaymentCompleted {
		return nil, fmt.Errorf("%w: cannot refund a %s payment", apperrors.ErrInvalidState, original.Status)
	}
	if original.IsRefund() {
		return nil, fmt.Errorf("%w: cannot refund a refund", apperrors.ErrInvalidState)
	}
	if amount.GreaterThan(original.Amount) {
		return nil, fmt.Errorf("%w: refund exceeds original amount %s", apperrors.ErrValidation, original.Amount.String())
	}

	negated := amount.Neg()
	refund := domain.Payment{
		ResidentID:        original.ResidentID,
		Amount:            negated,
		PaymentMethod:     original.PaymentMethod,
		Description:       fmt.Sprintf("Refund for %s", original.TransactionID),
		TransactionID:     "RFD-" + uuid.NewString(),
		Status:            domain.PaymentCompleted,
		ProcessingFee:     decimal.Zero,
		NetAmount:         negated,
		ProcessedAt:       time.Now(),
		OriginalPaymentID: &original.ID,
	}

	id, err := s.paymentRepo.SavePayment(ctx, refund)
	if err != nil {
		s.LogError(ctx, err, "failed to persist refund", "originalPaymentID", paymentID)
		return nil, err
	}
	refund.ID = id

	s.LogInfo(ctx, "payment refunded",
		"refundID", id,
		"originalPaymentID", paymentID,
		"amount", amount.String(),
	)
	return &refund, nil
}

// GetPaymentByID retrieves a specific payment by its ID.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// GetAllPayments retrieves every payment, newest first.
func (s *paymentService) GetAllPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments(ctx)
}

// GetPaymentHistory retrieves a resident's payments, newest first.
func (s *paymentService) GetPaymentHistory(ctx context.Context, residentID int64) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByResident(ctx, residentID)
}

// GetPaymentStats summarizes payments for one resident, or hostel-wide when
// residentID is nil. Refunds are tallied by absolute value.
func (s *paymentService) GetPaymentStats(ctx context.Context, residentID *int64) (*domain.PaymentStats, error) {
	var (
		payments []domain.Payment
		err      error
	)
	if residentID != nil {
		payments, err = s.paymentRepo.ListPaymentsByResident(ctx, *residentID)
	} else {
		payments, err = s.paymentRepo.ListPayments(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "failed to load payments for stats")
		return nil, err
	}

	stats := domain.PaymentStats{
		TotalPaid:     decimal.Zero,
		TotalRefunded: decimal.Zero,
		NetAmount:     decimal.Zero,
	}
	for _, p := range payments {
		if p.Status != domain.PaymentCompleted {
			continue
		}
		if p.IsRefund() {
			stats.TotalRefunded = stats.TotalRefunded.Add(p.Amount.Abs())
			stats.RefundCount++
		} else {
			stats.TotalPaid = stats.TotalPaid.Add(p.Amount)
			stats.PaymentCount++
			if stats.LastPaymentDate == nil || p.ProcessedAt.After(*stats.LastPaymentDate) {
				processedAt := p.ProcessedAt
				stats.LastPaymentDate = &processedAt
			}
		}
	}
	stats.NetAmount = stats.TotalPaid.Sub(stats.TotalRefunded)

	return &stats, nil
}
