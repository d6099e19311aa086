package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

// RoomReaderSvc defines read operations for room data
type RoomReaderSvc interface {
	// GetRoomByID retrieves a specific room by its ID.
	GetRoomByID(ctx context.Context, roomID int64) (*domain.Room, error)

	// ListRooms retrieves rooms, narrowed by the given filter
	// (search over room number and type, exact status match).
	ListRooms(ctx context.Context, filter dto.ListFilter) ([]domain.Room, error)

	// GetAvailableRooms retrieves rooms with status 'available'.
	GetAvailableRooms(ctx context.Context) ([]domain.Room, error)

	// GetMaintenanceAlerts retrieves rooms under maintenance or cleaning.
	GetMaintenanceAlerts(ctx context.Context) ([]domain.Room, error)
}

// RoomWriterSvc defines write operations for room data
type RoomWriterSvc interface {
	// CreateRoom persists a new room.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error)

	// UpdateRoom updates an existing room's details.
	UpdateRoom(ctx context.Context, roomID int64, req dto.UpdateRoomRequest) (*domain.Room, error)

	// UpdateRoomStatus changes only the status of a room.
	UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) (*domain.Room, error)

	// DeleteRoom removes a room.
	DeleteRoom(ctx context.Context, roomID int64) error
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
}
