package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoomRequest defines the data needed to create a new room.
// New rooms always start available with zero occupancy.
type CreateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=dorm private ensuite studio"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
	PricePerBed decimal.Decimal `json:"pricePerBed" binding:"required"`
}

// UpdateRoomRequest defines the fields that can be changed on a room.
// Nil fields are left unchanged.
type UpdateRoomRequest struct {
	RoomNumber       *string          `json:"roomNumber,omitempty"`
	Type             *string          `json:"type,omitempty" binding:"omitempty,oneof=dorm private ensuite studio"`
	Capacity         *int             `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	CurrentOccupancy *int             `json:"currentOccupancy,omitempty" binding:"omitempty,gte=0"`
	PricePerBed      *decimal.Decimal `json:"pricePerBed,omitempty"`
	Status           *string          `json:"status,omitempty" binding:"omitempty,oneof=available occupied maintenance cleaning"`
}

// UpdateRoomStatusRequest defines the data for a status-only update.
type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied maintenance cleaning"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	ID               int64           `json:"id"`
	RoomNumber       string          `json:"roomNumber"`
	Type             string          `json:"type"`
	Capacity         int             `json:"capacity"`
	CurrentOccupancy int             `json:"currentOccupancy"`
	PricePerBed      decimal.Decimal `json:"pricePerBed"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:               r.ID,
		RoomNumber:       r.RoomNumber,
		Type:             string(r.Type),
		Capacity:         r.Capacity,
		CurrentOccupancy: r.CurrentOccupancy,
		PricePerBed:      r.PricePerBed,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		LastUpdatedAt:    r.LastUpdatedAt,
	}
}

// ToRoomResponses converts a slice of domain.Room to []RoomResponse
func ToRoomResponses(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = ToRoomResponse(&r)
	}
	return res
}
