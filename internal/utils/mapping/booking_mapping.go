package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		ID:            d.ID,
		RoomID:        d.RoomID,
		GuestName:     d.GuestName,
		CheckInDate:   d.CheckInDate.Time,
		CheckOutDate:  d.CheckOutDate.Time,
		Status:        string(d.Status),
		PaymentStatus: string(d.PaymentStatus),
		TotalAmount:   d.TotalAmount,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		ID:            m.ID,
		RoomID:        m.RoomID,
		GuestName:     m.GuestName,
		CheckInDate:   domain.NewDate(m.CheckInDate),
		CheckOutDate:  domain.NewDate(m.CheckOutDate),
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainBookingSlice converts a slice of model Bookings to a slice of domain Bookings
func ToDomainBookingSlice(ms []models.Booking) []domain.Booking {
	ds := make([]domain.Booking, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}
