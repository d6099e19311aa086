package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelResident converts a domain Resident to a model Resident
func ToModelResident(d domain.Resident) models.Resident {
	return models.Resident{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		RoomID:          d.RoomID,
		BedNumber:       d.BedNumber,
		CheckInDate:     d.CheckInDate.Time,
		CheckOutDate:    d.CheckOutDate.Time,
		PaymentStatus:   string(d.PaymentStatus),
		LastPaymentDate: d.LastPaymentDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainResident converts a model Resident to a domain Resident
func ToDomainResident(m models.Resident) domain.Resident {
	return domain.Resident{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		RoomID:          m.RoomID,
		BedNumber:       m.BedNumber,
		CheckInDate:     domain.NewDate(m.CheckInDate),
		CheckOutDate:    domain.NewDate(m.CheckOutDate),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		LastPaymentDate: m.LastPaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainResidentSlice converts a slice of model Residents to a slice of domain Residents
func ToDomainResidentSlice(ms []models.Resident) []domain.Resident {
	ds := make([]domain.Resident, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResident(m)
	}
	return ds
}
