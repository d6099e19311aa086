package repositories

import (
	"context"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its ID.
	FindRoomByID(ctx context.Context, roomID int64) (*domain.Room, error)

	// ListRooms retrieves all rooms.
	ListRooms(ctx context.Context) ([]domain.Room, error)

	// ListAvailableRooms retrieves rooms with status 'available'.
	ListAvailableRooms(ctx context.Context) ([]domain.Room, error)

	// ListMaintenanceAlerts retrieves rooms under maintenance or cleaning.
	ListMaintenanceAlerts(ctx context.Context) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room and returns its generated ID.
	SaveRoom(ctx context.Context, room domain.Room) (int64, error)

	// UpdateRoom updates an existing room's details.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// UpdateRoomStatus updates only the status of a room.
	UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus, updatedAt time.Time) error

	// DeleteRoom removes a room.
	DeleteRoom(ctx context.Context, roomID int64) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}

// RoomRepositoryWithTx extends RoomRepositoryFacade with transaction capabilities
type RoomRepositoryWithTx interface {
	RoomRepositoryFacade
	TransactionManager
}
