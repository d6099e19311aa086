package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a room reservation.
type Booking struct {
	ID            int64           `json:"id"`
	RoomID        int64           `json:"roomId"` // FK -> rooms.id
	GuestName     string          `json:"guestName"`
	CheckInDate   Date            `json:"checkInDate"`
	CheckOutDate  Date            `json:"checkOutDate"` // >= CheckInDate
	Status        BookingStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ChecksInOn reports whether a confirmed booking checks in on the given day.
func (b Booking) ChecksInOn(day Date) bool {
	return b.Status == BookingStatusConfirmed && b.CheckInDate.Equal(day)
}

// ChecksOutOn reports whether a confirmed booking checks out on the given day.
func (b Booking) ChecksOutOn(day Date) bool {
	return b.Status == BookingStatusConfirmed && b.CheckOutDate.Equal(day)
}
