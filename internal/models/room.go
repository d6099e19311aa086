package models

import (
	"github.com/shopspring/decimal"
)

// RoomStatus mirrors the room status enum at the persistence layer.
type RoomStatus string

// Room represents a room row in the rooms table.
type Room struct {
	ID               int64           `db:"id"`
	RoomNumber       string          `db:"room_number"` // UNIQUE
	Type             string          `db:"type"`
	Capacity         int             `db:"capacity"`
	CurrentOccupancy int             `db:"current_occupancy"`
	PricePerBed      decimal.Decimal `db:"price_per_bed"`
	Status           RoomStatus      `db:"status"`
	AuditFields
}
