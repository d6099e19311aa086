package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/utils/filtering"
)

type roomService struct {
	BaseService
	roomRepo portsrepo.RoomRepositoryFacade
}

// NewRoomService creates a new room service.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{
		roomRepo: roomRepo,
	}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// validateOccupancy enforces the relationship between occupancy, capacity
// and status that every persisted room must satisfy.
func validateOccupancy(room domain.Room) error {
	if room.CurrentOccupancy < 0 || room.CurrentOccupancy > room.Capacity {
		return fmt.Errorf("%w: occupancy %d outside [0, %d]", apperrors.ErrValidation, room.CurrentOccupancy, room.Capacity)
	}
	if room.Status == domain.RoomStatusOccupied && room.CurrentOccupancy == 0 {
		return fmt.Errorf("%w: occupied room must have occupants", apperrors.ErrValidation)
	}
	if room.Status == domain.RoomStatusAvailable && room.CurrentOccupancy != 0 {
		return fmt.Errorf("%w: available room must be empty", apperrors.ErrValidation)
	}
	return nil
}

// CreateRoom persists a new room. New rooms start available and empty.
func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	now := time.Now()
	room := domain.Room{
		RoomNumber:       req.RoomNumber,
		Type:             domain.RoomType(req.Type),
		Capacity:         req.Capacity,
		CurrentOccupancy: 0,
		PricePerBed:      req.PricePerBed,
		Status:           domain.RoomStatusAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	id, err := s.roomRepo.SaveRoom(ctx, room)
	if err != nil {
		s.LogError(ctx, err, "failed to create room", "roomNumber", req.RoomNumber)
		return nil, err
	}
	room.ID = id

	s.LogInfo(ctx, "room created", "roomID", id, "roomNumber", room.RoomNumber)
	return &room, nil
}

// GetRoomByID retrieves a specific room by its ID.
func (s *roomService) GetRoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms retrieves rooms narrowed by the given filter. Search covers the
// room number and type; the status filter is an exact match with "all" as a
// bypass.
func (s *roomService) ListRooms(ctx context.Context, filter dto.ListFilter) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list rooms")
		return nil, err
	}

	return filtering.Apply(rooms, filter.Search, filter.Status,
		func(r domain.Room) []string { return []string{r.RoomNumber, string(r.Type)} },
		func(r domain.Room) string { return string(r.Status) },
	), nil
}

// GetAvailableRooms retrieves rooms with status 'available'.
func (s *roomService) GetAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.ListAvailableRooms(ctx)
}

// GetMaintenanceAlerts retrieves rooms under maintenance or cleaning.
func (s *roomService) GetMaintenanceAlerts(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.ListMaintenanceAlerts(ctx)
}

// UpdateRoom applies the non-nil fields of the request to an existing room.
func (s *roomService) UpdateRoom(ctx context.Context, roomID int64, req dto.UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Type != nil {
		room.Type = domain.RoomType(*req.Type)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.CurrentOccupancy != nil {
		room.CurrentOccupancy = *req.CurrentOccupancy
	}
	if req.PricePerBed != nil {
		room.PricePerBed = *req.PricePerBed
	}
	if req.Status != nil {
		room.Status = domain.RoomStatus(*req.Status)
	}

	if err := validateOccupancy(*room); err != nil {
		return nil, err
	}

	room.LastUpdatedAt = time.Now()
	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "failed to update room", "roomID", roomID)
		return nil, err
	}

	s.LogInfo(ctx, "room updated", "roomID", roomID)
	return room, nil
}

// UpdateRoomStatus changes only the status of a room. The new status must
// remain consistent with the room's current occupancy.
func (s *roomService) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) (*domain.Room, error) {
	if !domain.ValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: unknown room status %q", apperrors.ErrValidation, status)
	}

	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	room.Status = status
	if err := validateOccupancy(*room); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.roomRepo.UpdateRoomStatus(ctx, roomID, status, now); err != nil {
		s.LogError(ctx, err, "failed to update room status", "roomID", roomID, "status", status)
		return nil, err
	}
	room.LastUpdatedAt = now

	s.LogInfo(ctx, "room status updated", "roomID", roomID, "status", status)
	return room, nil
}

// DeleteRoom removes a room.
func (s *roomService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		s.LogError(ctx, err, "failed to delete room", "roomID", roomID)
		return err
	}
	s.LogInfo(ctx, "room deleted", "roomID", roomID)
	return nil
}
