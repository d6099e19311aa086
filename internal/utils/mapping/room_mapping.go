package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelRoom converts a domain Room to a model Room
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		ID:               d.ID,
		RoomNumber:       d.RoomNumber,
		Type:             string(d.Type),
		Capacity:         d.Capacity,
		CurrentOccupancy: d.CurrentOccupancy,
		PricePerBed:      d.PricePerBed,
		Status:           models.RoomStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainRoom converts a model Room to a domain Room
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		ID:               m.ID,
		RoomNumber:       m.RoomNumber,
		Type:             domain.RoomType(m.Type),
		Capacity:         m.Capacity,
		CurrentOccupancy: m.CurrentOccupancy,
		PricePerBed:      m.PricePerBed,
		Status:           domain.RoomStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to a slice of domain Rooms
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}
