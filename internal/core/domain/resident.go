package domain

import "time"

// PaymentStatus tracks whether a resident or booking is up to date on fees.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue:
		return true
	}
	return false
}

// Resident represents a guest currently or previously staying in the hostel.
type Resident struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	RoomID          int64         `json:"roomId"` // FK -> rooms.id
	BedNumber       int           `json:"bedNumber"`
	CheckInDate     Date          `json:"checkInDate"`
	CheckOutDate    Date          `json:"checkOutDate"` // >= CheckInDate
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	LastPaymentDate *time.Time    `json:"lastPaymentDate,omitempty"`
	AuditFields
}

// IsCurrent reports whether the resident is still staying as of the given day.
// A resident whose check-out date is exactly today is still current.
func (r Resident) IsCurrent(today Date) bool {
	return !r.CheckOutDate.Before(today.Time)
}
