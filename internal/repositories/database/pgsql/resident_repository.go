package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/hostelhub/hostelhub_backend/internal/models"
	"github.com/hostelhub/hostelhub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxResidentRepository struct {
	BaseRepository
}

// newPgxResidentRepository creates a new repository for resident data.
func newPgxResidentRepository(pool *pgxpool.Pool) portsrepo.ResidentRepositoryWithTx {
	return &PgxResidentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ResidentRepositoryWithTx = (*PgxResidentRepository)(nil)

const residentColumns = `id, name, email, phone, room_id, bed_number, check_in_date, check_out_date, payment_status, last_payment_date, created_at, last_updated_at`

func scanResident(row pgx.CollectableRow) (models.Resident, error) {
	var res models.Resident
	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Email,
		&res.Phone,
		&res.RoomID,
		&res.BedNumber,
		&res.CheckInDate,
		&res.CheckOutDate,
		&res.PaymentStatus,
		&res.LastPaymentDate,
		&res.CreatedAt,
		&res.LastUpdatedAt,
	)
	return res, err
}

// SaveResident inserts a new resident and returns the generated ID.
func (r *PgxResidentRepository) SaveResident(ctx context.Context, resident domain.Resident) (int64, error) {
	modelRes := mapping.ToModelResident(resident)

	query := `
		INSERT INTO residents (name, email, phone, room_id, bed_number, check_in_date, check_out_date, payment_status, last_payment_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelRes.Name,
		modelRes.Email,
		modelRes.Phone,
		modelRes.RoomID,
		modelRes.BedNumber,
		modelRes.CheckInDate,
		modelRes.CheckOutDate,
		modelRes.PaymentStatus,
		modelRes.LastPaymentDate,
		modelRes.CreatedAt,
		modelRes.LastUpdatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to save resident %s: %w", modelRes.Name, err)
	}
	return id, nil
}

// FindResidentByID retrieves a specific resident by their ID.
func (r *PgxResidentRepository) FindResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resident %d: %w", residentID, err)
	}

	modelRes, err := pgx.CollectOneRow(rows, scanResident)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resident by id %d: %w", residentID, err)
	}

	domainRes := mapping.ToDomainResident(modelRes)
	return &domainRes, nil
}

// ListResidents retrieves all residents ordered by name.
func (r *PgxResidentRepository) ListResidents(ctx context.Context) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query residents: %w", err)
	}
	defer rows.Close()

	modelResidents, err := pgx.CollectRows(rows, scanResident)
	if err != nil {
		return nil, fmt.Errorf("failed to scan residents: %w", err)
	}

	return mapping.ToDomainResidentSlice(modelResidents), nil
}

// ListCurrentResidents retrieves residents whose check-out date is on or
// after the given day. The SQL predicate mirrors Resident.IsCurrent: a
// resident checking out today is still current.
func (r *PgxResidentRepository) ListCurrentResidents(ctx context.Context, today domain.Date) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE check_out_date >= $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("failed to query current residents: %w", err)
	}
	defer rows.Close()

	modelResidents, err := pgx.CollectRows(rows, scanResident)
	if err != nil {
		return nil, fmt.Errorf("failed to scan current residents: %w", err)
	}

	return mapping.ToDomainResidentSlice(modelResidents), nil
}

// ListResidentsByRoom retrieves residents assigned to a room.
func (r *PgxResidentRepository) ListResidentsByRoom(ctx context.Context, roomID int64) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE room_id = $1 ORDER BY bed_number;`

	rows, err := r.Pool.Query(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query residents of room %d: %w", roomID, err)
	}
	defer rows.Close()

	modelResidents, err := pgx.CollectRows(rows, scanResident)
	if err != nil {
		return nil, fmt.Errorf("failed to scan residents of room %d: %w", roomID, err)
	}

	return mapping.ToDomainResidentSlice(modelResidents), nil
}

// UpdateResident updates an existing resident's details.
func (r *PgxResidentRepository) UpdateResident(ctx context.Context, resident domain.Resident) error {
	modelRes := mapping.ToModelResident(resident)

	query := `
		UPDATE residents
		SET name = $2, email = $3, phone = $4, room_id = $5, bed_number = $6,
			check_in_date = $7, check_out_date = $8, payment_status = $9,
			last_payment_date = $10, last_updated_at = $11
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelRes.ID,
		modelRes.Name,
		modelRes.Email,
		modelRes.Phone,
		modelRes.RoomID,
		modelRes.BedNumber,
		modelRes.CheckInDate,
		modelRes.CheckOutDate,
		modelRes.PaymentStatus,
		modelRes.LastPaymentDate,
		modelRes.LastUpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update resident %d: %w", modelRes.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CheckOutResident sets the resident's check-out date.
func (r *PgxResidentRepository) CheckOutResident(ctx context.Context, residentID int64, checkOutDate domain.Date, updatedAt time.Time) error {
	query := `UPDATE residents SET check_out_date = $2, last_updated_at = $3 WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, residentID, checkOutDate, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to check out resident %d: %w", residentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateResidentPaymentStatus updates a resident's payment status and,
// when lastPaymentDate is non-nil, their last payment timestamp.
func (r *PgxResidentRepository) UpdateResidentPaymentStatus(ctx context.Context, residentID int64, status domain.PaymentStatus, lastPaymentDate *time.Time, updatedAt time.Time) error {
	query := `
		UPDATE residents
		SET payment_status = $2,
			last_payment_date = COALESCE($3, last_payment_date),
			last_updated_at = $4
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, residentID, string(status), lastPaymentDate, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update payment status of resident %d: %w", residentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteResident removes a resident.
func (r *PgxResidentRepository) DeleteResident(ctx context.Context, residentID int64) error {
	query := `DELETE FROM residents WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, residentID)
	if err != nil {
		return fmt.Errorf("failed to delete resident %d: %w", residentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
