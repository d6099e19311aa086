package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/hostelhub/hostelhub_backend/internal/models"
	"github.com/hostelhub/hostelhub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryWithTx {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BookingRepositoryWithTx = (*PgxBookingRepository)(nil)

const bookingColumns = `id, room_id, guest_name, check_in_date, check_out_date, status, payment_status, total_amount, created_at`

func scanBooking(row pgx.CollectableRow) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&b.GuestName,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.Status,
		&b.PaymentStatus,
		&b.TotalAmount,
		&b.CreatedAt,
	)
	return b, err
}

// SaveBooking inserts a new booking and returns the generated ID.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) (int64, error) {
	modelBooking := mapping.ToModelBooking(booking)

	query := `
		INSERT INTO bookings (room_id, guest_name, check_in_date, check_out_date, status, payment_status, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelBooking.RoomID,
		modelBooking.GuestName,
		modelBooking.CheckInDate,
		modelBooking.CheckOutDate,
		modelBooking.Status,
		modelBooking.PaymentStatus,
		modelBooking.TotalAmount,
		modelBooking.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to save booking for room %d: %w", modelBooking.RoomID, err)
	}
	return id, nil
}

// FindBookingByID retrieves a specific booking by its ID.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking %d: %w", bookingID, err)
	}

	modelBooking, err := pgx.CollectOneRow(rows, scanBooking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by id %d: %w", bookingID, err)
	}

	domainBooking := mapping.ToDomainBooking(modelBooking)
	return &domainBooking, nil
}

// ListBookings retrieves all bookings, soonest check-in first.
func (r *PgxBookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY check_in_date, id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ListUpcomingBookings retrieves confirmed bookings checking in on or after
// the given day.
func (r *PgxBookingRepository) ListUpcomingBookings(ctx context.Context, today domain.Date) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND check_in_date >= $2
		ORDER BY check_in_date, id;
	`

	rows, err := r.Pool.Query(ctx, query, string(domain.BookingStatusConfirmed), today)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming bookings: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming bookings: %w", err)
	}

	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ListCheckInsOn retrieves confirmed bookings checking in on the given day.
func (r *PgxBookingRepository) ListCheckInsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND check_in_date = $2
		ORDER BY id;
	`

	rows, err := r.Pool.Query(ctx, query, string(domain.BookingStatusConfirmed), day)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan check-ins: %w", err)
	}

	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ListCheckOutsOn retrieves confirmed bookings checking out on the given day.
func (r *PgxBookingRepository) ListCheckOutsOn(ctx context.Context, day domain.Date) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND check_out_date = $2
		ORDER BY id;
	`

	rows, err := r.Pool.Query(ctx, query, string(domain.BookingStatusConfirmed), day)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-outs: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan check-outs: %w", err)
	}

	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// ListNotificationAlerts retrieves confirmed bookings whose check-in or
// check-out date falls on either of the two given days.
func (r *PgxBookingRepository) ListNotificationAlerts(ctx context.Context, today, tomorrow domain.Date) ([]domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1
			AND (check_in_date IN ($2, $3) OR check_out_date IN ($2, $3))
		ORDER BY check_in_date, id;
	`

	rows, err := r.Pool.Query(ctx, query, string(domain.BookingStatusConfirmed), today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking alerts: %w", err)
	}
	defer rows.Close()

	modelBookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to scan booking alerts: %w", err)
	}

	return mapping.ToDomainBookingSlice(modelBookings), nil
}

// UpdateBooking updates an existing booking's details.
func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	modelBooking := mapping.ToModelBooking(booking)

	query := `
		UPDATE bookings
		SET room_id = $2, guest_name = $3, check_in_date = $4, check_out_date = $5,
			status = $6, payment_status = $7, total_amount = $8
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelBooking.ID,
		modelBooking.RoomID,
		modelBooking.GuestName,
		modelBooking.CheckInDate,
		modelBooking.CheckOutDate,
		modelBooking.Status,
		modelBooking.PaymentStatus,
		modelBooking.TotalAmount,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking %d: %w", modelBooking.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking.
func (r *PgxBookingRepository) DeleteBooking(ctx context.Context, bookingID int64) error {
	query := `DELETE FROM bookings WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", bookingID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
