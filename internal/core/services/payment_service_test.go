package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/core/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockResidentRepo *MockResidentRepository
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockResidentRepo = new(MockResidentRepository)
}

// newService builds a payment service with a deterministic gateway outcome.
func (suite *PaymentServiceTestSuite) newService(declined bool) portssvc.PaymentSvcFacade {
	outcome := 0.99 // above any sane failure rate, charge succeeds
	if declined {
		outcome = 0.0
	}
	return services.NewPaymentService(suite.mockPaymentRepo, suite.mockResidentRepo,
		services.WithFailureRate(0.05),
		services.WithRandSource(func() float64 { return outcome }),
	)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_Success() {
	ctx := context.Background()
	service := suite.newService(false)

	req := dto.ProcessPaymentRequest{
		ResidentID:    12,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "credit_card",
		Description:   "August rent",
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, int64(12)).Return(&domain.Resident{ID: 12}, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentMarkingResidentPaid", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ResidentID == 12 &&
			p.Status == domain.PaymentCompleted &&
			p.ProcessingFee.Equal(decimal.RequireFromString("2.90")) &&
			p.NetAmount.Equal(decimal.RequireFromString("97.10"))
	})).Return(int64(55), nil).Once()

	payment, err := service.ProcessPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(int64(55), payment.ID)
	suite.True(payment.ProcessingFee.Equal(decimal.RequireFromString("2.90")), "fee was %s", payment.ProcessingFee)
	suite.True(payment.NetAmount.Equal(decimal.RequireFromString("97.10")), "net was %s", payment.NetAmount)
	suite.Contains(payment.TransactionID, "TXN-")
	suite.False(payment.IsRefund())

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_GatewayDecline() {
	ctx := context.Background()
	service := suite.newService(true)

	req := dto.ProcessPaymentRequest{
		ResidentID:    12,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "credit_card",
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, int64(12)).Return(&domain.Resident{ID: 12}, nil).Once()

	payment, err := service.ProcessPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrProcessingFailure)
	// Nothing was persisted.
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentMarkingResidentPaid", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_NonPositiveAmount() {
	ctx := context.Background()
	service := suite.newService(false)

	req := dto.ProcessPaymentRequest{
		ResidentID:    12,
		Amount:        decimal.Zero,
		PaymentMethod: "credit_card",
	}

	payment, err := service.ProcessPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_ResidentNotFound() {
	ctx := context.Background()
	service := suite.newService(false)

	req := dto.ProcessPaymentRequest{
		ResidentID:    99,
		Amount:        decimal.RequireFromString("50.00"),
		PaymentMethod: "bank_transfer",
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := service.ProcessPayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRefundPayment_Success() {
	ctx := context.Background()
	service := suite.newService(false)

	original := &domain.Payment{
		ID:            3,
		ResidentID:    12,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: domain.PaymentMethodCreditCard,
		TransactionID: "TXN-abc",
		Status:        domain.PaymentCompleted,
		ProcessedAt:   time.Now().Add(-24 * time.Hour),
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(3)).Return(original, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount.Equal(decimal.RequireFromString("-40.00")) &&
			p.ProcessingFee.IsZero() &&
			p.NetAmount.Equal(decimal.RequireFromString("-40.00")) &&
			p.OriginalPaymentID != nil && *p.OriginalPaymentID == 3
	})).Return(int64(8), nil).Once()

	refund, err := service.RefundPayment(ctx, 3, decimal.RequireFromString("40.00"))

	suite.Require().NoError(err)
	suite.Require().NotNil(refund)
	suite.Equal(int64(8), refund.ID)
	suite.True(refund.IsRefund())
	suite.Contains(refund.TransactionID, "RFD-")

	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRefundPayment_NotFound() {
	ctx := context.Background()
	service := suite.newService(false)

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	refund, err := service.RefundPayment(ctx, 404, decimal.RequireFromString("10.00"))

	suite.Require().Error(err)
	suite.Nil(refund)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestRefundPayment_NonCompletedOriginal() {
	ctx := context.Background()
	service := suite.newService(false)

	failedRow := &domain.Payment{
		ID:         5,
		ResidentID: 12,
		Amount:     decimal.RequireFromString("100.00"),
		Status:     domain.PaymentFailed,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(5)).Return(failedRow, nil).Once()

	refund, err := service.RefundPayment(ctx, 5, decimal.RequireFromString("10.00"))

	suite.Require().Error(err)
	suite.Nil(refund)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRefundPayment_RefundingARefund() {
	ctx := context.Background()
	service := suite.newService(false)

	originalID := int64(3)
	refundRow := &domain.Payment{
		ID:                8,
		ResidentID:        12,
		Amount:            decimal.RequireFromString("-40.00"),
		Status:            domain.PaymentCompleted,
		OriginalPaymentID: &originalID,
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, int64(8)).Return(refundRow, nil).Once()

	refund, err := service.RefundPayment(ctx, 8, decimal.RequireFromString("10.00"))

	suite.Require().Error(err)
	suite.Nil(refund)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentStats_MixedHistory() {
	ctx := context.Background()
	service := suite.newService(false)

	now := time.Now()
	earlier := now.Add(-48 * time.Hour)
	residentID := int64(12)
	payments := []domain.Payment{
		{ID: 2, ResidentID: 12, Amount: decimal.RequireFromString("-30.00"), Status: domain.PaymentCompleted, ProcessedAt: now},
		{ID: 1, ResidentID: 12, Amount: decimal.RequireFromString("100.00"), Status: domain.PaymentCompleted, ProcessedAt: earlier},
	}

	suite.mockPaymentRepo.On("ListPaymentsByResident", ctx, residentID).Return(payments, nil).Once()

	stats, err := service.GetPaymentStats(ctx, &residentID)

	suite.Require().NoError(err)
	suite.True(stats.TotalPaid.Equal(decimal.RequireFromString("100.00")))
	suite.True(stats.TotalRefunded.Equal(decimal.RequireFromString("30.00")))
	suite.True(stats.NetAmount.Equal(decimal.RequireFromString("70.00")))
	suite.Equal(1, stats.PaymentCount)
	suite.Equal(1, stats.RefundCount)
	suite.Require().NotNil(stats.LastPaymentDate)
	suite.True(stats.LastPaymentDate.Equal(earlier))
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
