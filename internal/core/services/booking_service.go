package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/utils/filtering"
)

type bookingService struct {
	BaseService
	bookingRepo portsrepo.BookingRepositoryFacade
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking persists a new reservation. Status and payment status
// default to pending when omitted.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*domain.Booking, error) {
	if req.CheckOutDate.Before(req.CheckInDate.Time) {
		return nil, fmt.Errorf("%w: check-out date precedes check-in date", apperrors.ErrValidation)
	}

	status := domain.BookingStatusPending
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
	}
	paymentStatus := domain.PaymentStatusPending
	if req.PaymentStatus != "" {
		paymentStatus = domain.PaymentStatus(req.PaymentStatus)
	}

	booking := domain.Booking{
		RoomID:        req.RoomID,
		GuestName:     req.GuestName,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		Status:        status,
		PaymentStatus: paymentStatus,
		TotalAmount:   req.TotalAmount,
		CreatedAt:     time.Now(),
	}

	id, err := s.bookingRepo.SaveBooking(ctx, booking)
	if err != nil {
		s.LogError(ctx, err, "failed to create booking", "roomID", req.RoomID)
		return nil, err
	}
	booking.ID = id

	s.LogInfo(ctx, "booking created", "bookingID", id, "roomID", booking.RoomID)
	return &booking, nil
}

// GetBookingByID retrieves a specific booking by its ID.
func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookingRepo.FindBookingByID(ctx, bookingID)
}

// ListBookings retrieves bookings narrowed by the given filter. Search covers
// the booking id and room id; the status filter is an exact match with "all"
// as a bypass.
func (s *bookingService) ListBookings(ctx context.Context, filter dto.ListFilter) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list bookings")
		return nil, err
	}

	return filtering.Apply(bookings, filter.Search, filter.Status,
		func(b domain.Booking) []string {
			return []string{strconv.FormatInt(b.ID, 10), strconv.FormatInt(b.RoomID, 10), b.GuestName}
		},
		func(b domain.Booking) string { return string(b.Status) },
	), nil
}

// GetUpcomingBookings retrieves confirmed bookings checking in today or later.
func (s *bookingService) GetUpcomingBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListUpcomingBookings(ctx, domain.Today())
}

// GetTodayCheckIns retrieves confirmed bookings checking in today.
func (s *bookingService) GetTodayCheckIns(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListCheckInsOn(ctx, domain.Today())
}

// GetTodayCheckOuts retrieves confirmed bookings checking out today.
func (s *bookingService) GetTodayCheckOuts(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListCheckOutsOn(ctx, domain.Today())
}

// GetNotificationAlerts retrieves confirmed bookings checking in or out today
// or tomorrow.
func (s *bookingService) GetNotificationAlerts(ctx context.Context) ([]domain.Booking, error) {
	today := domain.Today()
	return s.bookingRepo.ListNotificationAlerts(ctx, today, today.AddDays(1))
}

// UpdateBooking applies the non-nil fields of the request to an existing
// booking.
func (s *bookingService) UpdateBooking(ctx context.Context, bookingID int64, req dto.UpdateBookingRequest) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}
	if req.GuestName != nil {
		booking.GuestName = *req.GuestName
	}
	if req.CheckInDate != nil {
		booking.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		booking.CheckOutDate = *req.CheckOutDate
	}
	if req.Status != nil {
		booking.Status = domain.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		booking.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}

	if booking.CheckOutDate.Before(booking.CheckInDate.Time) {
		return nil, fmt.Errorf("%w: check-out date precedes check-in date", apperrors.ErrValidation)
	}

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		s.LogError(ctx, err, "failed to update booking", "bookingID", bookingID)
		return nil, err
	}

	s.LogInfo(ctx, "booking updated", "bookingID", bookingID)
	return booking, nil
}

// DeleteBooking removes a booking.
func (s *bookingService) DeleteBooking(ctx context.Context, bookingID int64) error {
	if err := s.bookingRepo.DeleteBooking(ctx, bookingID); err != nil {
		s.LogError(ctx, err, "failed to delete booking", "bookingID", bookingID)
		return err
	}
	s.LogInfo(ctx, "booking deleted", "bookingID", bookingID)
	return nil
}
