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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomRepository struct {
	BaseRepository
}

// newPgxRoomRepository creates a new repository for room data.
func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryWithTx {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RoomRepositoryWithTx = (*PgxRoomRepository)(nil)

const roomColumns = `id, room_number, type, capacity, current_occupancy, price_per_bed, status, created_at, last_updated_at`

func scanRoom(row pgx.CollectableRow) (models.Room, error) {
	var room models.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.Capacity,
		&room.CurrentOccupancy,
		&room.PricePerBed,
		&room.Status,
		&room.CreatedAt,
		&room.LastUpdatedAt,
	)
	return room, err
}

// SaveRoom inserts a new room and returns its generated ID.
func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) (int64, error) {
	modelRoom := mapping.ToModelRoom(room)

	query := `
		INSERT INTO rooms (room_number, type, capacity, current_occupancy, price_per_bed, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelRoom.RoomNumber,
		modelRoom.Type,
		modelRoom.Capacity,
		modelRoom.CurrentOccupancy,
		modelRoom.PricePerBed,
		modelRoom.Status,
		modelRoom.CreatedAt,
		modelRoom.LastUpdatedAt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return 0, fmt.Errorf("%w: room number %s already exists", apperrors.ErrDuplicate, modelRoom.RoomNumber)
		}
		return 0, fmt.Errorf("failed to save room %s: %w", modelRoom.RoomNumber, err)
	}
	return id, nil
}

// FindRoomByID retrieves a specific room by its ID.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1;`

	var modelRoom models.Room
	err := r.Pool.QueryRow(ctx, query, roomID).Scan(
		&modelRoom.ID,
		&modelRoom.RoomNumber,
		&modelRoom.Type,
		&modelRoom.Capacity,
		&modelRoom.CurrentOccupancy,
		&modelRoom.PricePerBed,
		&modelRoom.Status,
		&modelRoom.CreatedAt,
		&modelRoom.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by id %d: %w", roomID, err)
	}

	domainRoom := mapping.ToDomainRoom(modelRoom)
	return &domainRoom, nil
}

// ListRooms retrieves all rooms ordered by room number.
func (r *PgxRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	modelRooms, err := pgx.CollectRows(rows, scanRoom)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rooms: %w", err)
	}

	return mapping.ToDomainRoomSlice(modelRooms), nil
}

// ListAvailableRooms retrieves rooms with status 'available'.
func (r *PgxRoomRepository) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = $1 ORDER BY room_number;`

	rows, err := r.Pool.Query(ctx, query, string(domain.RoomStatusAvailable))
	if err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	defer rows.Close()

	modelRooms, err := pgx.CollectRows(rows, scanRoom)
	if err != nil {
		return nil, fmt.Errorf("failed to scan available rooms: %w", err)
	}

	return mapping.ToDomainRoomSlice(modelRooms), nil
}

// ListMaintenanceAlerts retrieves rooms under maintenance or cleaning.
func (r *PgxRoomRepository) ListMaintenanceAlerts(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = ANY($1) ORDER BY room_number;`

	statuses := []string{string(domain.RoomStatusMaintenance), string(domain.RoomStatusCleaning)}
	rows, err := r.Pool.Query(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance alerts: %w", err)
	}
	defer rows.Close()

	modelRooms, err := pgx.CollectRows(rows, scanRoom)
	if err != nil {
		return nil, fmt.Errorf("failed to scan maintenance alerts: %w", err)
	}

	return mapping.ToDomainRoomSlice(modelRooms), nil
}

// UpdateRoom updates an existing room's details.
func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	modelRoom := mapping.ToModelRoom(room)

	query := `
		UPDATE rooms
		SET room_number = $2, type = $3, capacity = $4, current_occupancy = $5,
			price_per_bed = $6, status = $7, last_updated_at = $8
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelRoom.ID,
		modelRoom.RoomNumber,
		modelRoom.Type,
		modelRoom.Capacity,
		modelRoom.CurrentOccupancy,
		modelRoom.PricePerBed,
		modelRoom.Status,
		modelRoom.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: room number %s already exists", apperrors.ErrDuplicate, modelRoom.RoomNumber)
		}
		return fmt.Errorf("failed to update room %d: %w", modelRoom.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRoomStatus updates only the status of a room.
func (r *PgxRoomRepository) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus, updatedAt time.Time) error {
	query := `UPDATE rooms SET status = $2, last_updated_at = $3 WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, roomID, string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of room %d: %w", roomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room.
func (r *PgxRoomRepository) DeleteRoom(ctx context.Context, roomID int64) error {
	query := `DELETE FROM rooms WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room %d: %w", roomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
