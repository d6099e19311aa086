package domain

import (
	"github.com/shopspring/decimal"
)

// RoomType classifies the sleeping arrangement of a room.
type RoomType string

const (
	RoomTypeDorm    RoomType = "dorm"
	RoomTypePrivate RoomType = "private"
	RoomTypeEnsuite RoomType = "ensuite"
	RoomTypeStudio  RoomType = "studio"
)

// RoomStatus is the operational state of a room.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
)

// ValidRoomStatus reports whether s is a known room status.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	}
	return false
}

// Room represents a bookable room within the hostel.
// Invariants: 0 <= CurrentOccupancy <= Capacity; an occupied room has
// CurrentOccupancy > 0 and an available room has CurrentOccupancy = 0.
type Room struct {
	ID               int64           `json:"id"`
	RoomNumber       string          `json:"roomNumber"` // Unique, user-facing (e.g. "A-101")
	Type             RoomType        `json:"type"`
	Capacity         int             `json:"capacity"`
	CurrentOccupancy int             `json:"currentOccupancy"`
	PricePerBed      decimal.Decimal `json:"pricePerBed"`
	Status           RoomStatus      `json:"status"`
	AuditFields
}

// NeedsAttention reports whether the room is under maintenance or cleaning.
func (r Room) NeedsAttention() bool {
	return r.Status == RoomStatusMaintenance || r.Status == RoomStatusCleaning
}
