package repositories

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByID retrieves a specific booking by its ID.
	FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// ListBookings retrieves all bookings.
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	// ListUpcomingBookings retrieves confirmed bookings checking in on or
	// after the given day.
	ListUpcomingBookings(ctx context.Context, today domain.Date) ([]domain.Booking, error)

	// ListCheckInsOn retrieves confirmed bookings checking in on the given day.
	ListCheckInsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error)

	// ListCheckOutsOn retrieves confirmed bookings checking out on the given day.
	ListCheckOutsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error)

	// ListNotificationAlerts retrieves confirmed bookings whose check-in or
	// check-out date falls on either of the two given days.
	ListNotificationAlerts(ctx context.Context, today, tomorrow domain.Date) ([]domain.Booking, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// SaveBooking persists a new booking and returns the generated ID.
	SaveBooking(ctx context.Context, booking domain.Booking) (int64, error)

	// UpdateBooking updates an existing booking's details.
	UpdateBooking(ctx context.Context, booking domain.Booking) error

	// DeleteBooking removes a booking.
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// BookingRepositoryWithTx extends BookingRepositoryFacade with transaction capabilities
type BookingRepositoryWithTx interface {
	BookingRepositoryFacade
	TransactionManager
}
