package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

// BookingReaderSvc defines read operations for booking data
type BookingReaderSvc interface {
	// GetBookingByID retrieves a specific booking by its ID.
	GetBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error)

	// ListBookings retrieves bookings, narrowed by the given filter
	// (search over booking id and room id, exact status match).
	ListBookings(ctx context.Context, filter dto.ListFilter) ([]domain.Booking, error)

	// GetUpcomingBookings retrieves confirmed bookings checking in today
	// or later.
	GetUpcomingBookings(ctx context.Context) ([]domain.Booking, error)

	// GetTodayCheckIns retrieves confirmed bookings checking in today.
	GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error)

	// GetTodayCheckOuts retrieves confirmed bookings checking out today.
	GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error)

	// GetNotificationAlerts retrieves confirmed bookings checking in or out
	// today or tomorrow. This window is deliberately wider than the same-day
	// window the notification generator materializes from; the generator only
	// persists same-day check-ins, while this view feeds the presentation layer.
	GetNotificationAlerts(ctx context.Context) ([]domain.Booking, error)
}

// BookingWriterSvc defines write operations for booking data
type BookingWriterSvc interface {
	// CreateBooking persists a new reservation.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error)

	// UpdateBooking updates an existing booking's details.
	UpdateBooking(ctx context.Context, bookingID int64, req dto.UpdateBookingRequest) (*domain.Booking, error)

	// DeleteBooking removes a booking.
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
