package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest defines the data needed to create a reservation.
type CreateBookingRequest struct {
	RoomID        int64           `json:"roomId" binding:"required,gt=0"`
	GuestName     string          `json:"guestName" binding:"required"`
	CheckInDate   domain.Date     `json:"checkInDate" binding:"required"`
	CheckOutDate  domain.Date     `json:"checkOutDate" binding:"required"`
	Status        string          `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus string          `json:"paymentStatus" binding:"omitempty,oneof=paid pending overdue"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateBookingRequest defines the fields that can be changed on a booking.
// Nil fields are left unchanged.
type UpdateBookingRequest struct {
	RoomID        *int64           `json:"roomId,omitempty" binding:"omitempty,gt=0"`
	GuestName     *string          `json:"guestName,omitempty"`
	CheckInDate   *domain.Date     `json:"checkInDate,omitempty"`
	CheckOutDate  *domain.Date     `json:"checkOutDate,omitempty"`
	Status        *string          `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus *string          `json:"paymentStatus,omitempty" binding:"omitempty,oneof=paid pending overdue"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	ID            int64           `json:"id"`
	RoomID        int64           `json:"roomId"`
	GuestName     string          `json:"guestName"`
	CheckInDate   domain.Date     `json:"checkInDate"`
	CheckOutDate  domain.Date     `json:"checkOutDate"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
	}
}

// ToBookingResponses converts a slice of domain.Booking to []BookingResponse
func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		res[i] = ToBookingResponse(&b)
	}
	return res
}
