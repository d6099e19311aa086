package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// CreateResidentRequest defines the data needed to register a new resident.
type CreateResidentRequest struct {
	Name         string      `json:"name" binding:"required"`
	Email        string      `json:"email" binding:"required,email"`
	Phone        string      `json:"phone" binding:"required"`
	RoomID       int64       `json:"roomId" binding:"required,gt=0"`
	BedNumber    int         `json:"bedNumber" binding:"required,gt=0"`
	CheckInDate  domain.Date `json:"checkInDate" binding:"required"`
	CheckOutDate domain.Date `json:"checkOutDate" binding:"required"`
}

// UpdateResidentRequest defines the fields that can be changed on a resident.
// Nil fields are left unchanged.
type UpdateResidentRequest struct {
	Name         *string      `json:"name,omitempty"`
	Email        *string      `json:"email,omitempty" binding:"omitempty,email"`
	Phone        *string      `json:"phone,omitempty"`
	RoomID       *int64       `json:"roomId,omitempty" binding:"omitempty,gt=0"`
	BedNumber    *int         `json:"bedNumber,omitempty" binding:"omitempty,gt=0"`
	CheckInDate  *domain.Date `json:"checkInDate,omitempty"`
	CheckOutDate *domain.Date `json:"checkOutDate,omitempty"`
}

// UpdatePaymentStatusRequest defines the data for a payment-status update.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid pending overdue"`
}

// ResidentResponse defines the data returned for a resident.
type ResidentResponse struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	RoomID          int64       `json:"roomId"`
	BedNumber       int         `json:"bedNumber"`
	CheckInDate     domain.Date `json:"checkInDate"`
	CheckOutDate    domain.Date `json:"checkOutDate"`
	PaymentStatus   string      `json:"paymentStatus"`
	LastPaymentDate *time.Time  `json:"lastPaymentDate,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	LastUpdatedAt   time.Time   `json:"lastUpdatedAt"`
}

// ToResidentResponse converts a domain.Resident to ResidentResponse DTO
func ToResidentResponse(r *domain.Resident) ResidentResponse {
	return ResidentResponse{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		RoomID:          r.RoomID,
		BedNumber:       r.BedNumber,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		PaymentStatus:   string(r.PaymentStatus),
		LastPaymentDate: r.LastPaymentDate,
		CreatedAt:       r.CreatedAt,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
}

// ToResidentResponses converts a slice of domain.Resident to []ResidentResponse
func ToResidentResponses(residents []domain.Resident) []ResidentResponse {
	res := make([]ResidentResponse, len(residents))
	for i, r := range residents {
		res[i] = ToResidentResponse(&r)
	}
	return res
}
