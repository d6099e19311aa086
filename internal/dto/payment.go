package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest defines the data needed to charge a resident.
type ProcessPaymentRequest struct {
	ResidentID    int64           `json:"residentId" binding:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=credit_card debit_card bank_transfer digital_wallet"`
	Description   string          `json:"description"`
}

// RefundPaymentRequest defines the data needed to refund a completed payment.
type RefundPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentResponse defines the data returned for a payment or refund.
type PaymentResponse struct {
	ID                int64           `json:"id"`
	ResidentID        int64           `json:"residentId"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentMethod     string          `json:"paymentMethod"`
	Description       string          `json:"description"`
	TransactionID     string          `json:"transactionId"`
	Status            string          `json:"status"`
	ProcessingFee     decimal.Decimal `json:"processingFee"`
	NetAmount         decimal.Decimal `json:"netAmount"`
	ProcessedAt       time.Time       `json:"processedAt"`
	OriginalPaymentID *int64          `json:"originalPaymentId,omitempty"`
}

// PaymentStatsResponse summarizes payment history figures.
type PaymentStatsResponse struct {
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalRefunded   decimal.Decimal `json:"totalRefunded"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	PaymentCount    int             `json:"paymentCount"`
	RefundCount     int             `json:"refundCount"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		ResidentID:        p.ResidentID,
		Amount:            p.Amount,
		PaymentMethod:     string(p.PaymentMethod),
		Description:       p.Description,
		TransactionID:     p.TransactionID,
		Status:            string(p.Status),
		ProcessingFee:     p.ProcessingFee,
		NetAmount:         p.NetAmount,
		ProcessedAt:       p.ProcessedAt,
		OriginalPaymentID: p.OriginalPaymentID,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// ToPaymentStatsResponse converts domain.PaymentStats to PaymentStatsResponse DTO
func ToPaymentStatsResponse(s *domain.PaymentStats) PaymentStatsResponse {
	return PaymentStatsResponse{
		TotalPaid:       s.TotalPaid,
		TotalRefunded:   s.TotalRefunded,
		NetAmount:       s.NetAmount,
		PaymentCount:    s.PaymentCount,
		RefundCount:     s.RefundCount,
		LastPaymentDate: s.LastPaymentDate,
	}
}
