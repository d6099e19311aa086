package models

import "time"

// Resident represents a resident row in the residents table.
// CheckInDate/CheckOutDate map to DATE columns.
type Resident struct {
	ID              int64      `db:"id"`
	Name            string     `db:"name"`
	Email           string     `db:"email"`
	Phone           string     `db:"phone"`
	RoomID          int64      `db:"room_id"`
	BedNumber       int        `db:"bed_number"`
	CheckInDate     time.Time  `db:"check_in_date"`
	CheckOutDate    time.Time  `db:"check_out_date"`
	PaymentStatus   string     `db:"payment_status"`
	LastPaymentDate *time.Time `db:"last_payment_date"` // Nullable
	AuditFields
}
