package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:                d.ID,
		ResidentID:        d.ResidentID,
		Amount:            d.Amount,
		PaymentMethod:     string(d.PaymentMethod),
		Description:       d.Description,
		TransactionID:     d.TransactionID,
		Status:            string(d.Status),
		ProcessingFee:     d.ProcessingFee,
		NetAmount:         d.NetAmount,
		ProcessedAt:       d.ProcessedAt,
		OriginalPaymentID: d.OriginalPaymentID,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:                m.ID,
		ResidentID:        m.ResidentID,
		Amount:            m.Amount,
		PaymentMethod:     domain.PaymentMethod(m.PaymentMethod),
		Description:       m.Description,
		TransactionID:     m.TransactionID,
		Status:            domain.PaymentRecordStatus(m.Status),
		ProcessingFee:     m.ProcessingFee,
		NetAmount:         m.NetAmount,
		ProcessedAt:       m.ProcessedAt,
		OriginalPaymentID: m.OriginalPaymentID,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
