package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a booking row in the bookings table.
type Booking struct {
	ID            int64           `db:"id"`
	RoomID        int64           `db:"room_id"`
	GuestName     string          `db:"guest_name"`
	CheckInDate   time.Time       `db:"check_in_date"`
	CheckOutDate  time.Time       `db:"check_out_date"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	CreatedAt     time.Time       `db:"created_at"`
}
