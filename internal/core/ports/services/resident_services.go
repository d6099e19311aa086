package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

// ResidentReaderSvc defines read operations for resident data
type ResidentReaderSvc interface {
	// GetResidentByID retrieves a specific resident by their ID.
	GetResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error)

	// ListResidents retrieves all residents.
	ListResidents(ctx context.Context) ([]domain.Resident, error)

	// GetCurrentResidents retrieves residents whose check-out date has not
	// yet passed, narrowed by the given filter (search over name, email,
	// phone and room id; exact payment-status match).
	GetCurrentResidents(ctx context.Context, filter dto.ListFilter) ([]domain.Resident, error)

	// GetResidentsByRoom retrieves residents assigned to a room.
	GetResidentsByRoom(ctx context.Context, roomID int64) ([]domain.Resident, error)
}

// ResidentWriterSvc defines write operations for resident data
type ResidentWriterSvc interface {
	// CreateResident registers a new resident.
	CreateResident(ctx context.Context, req dto.CreateResidentRequest) (*domain.Resident, error)

	// UpdateResident updates an existing resident's details.
	UpdateResident(ctx context.Context, residentID int64, req dto.UpdateResidentRequest) (*domain.Resident, error)

	// CheckOut sets the resident's check-out date to today.
	CheckOut(ctx context.Context, residentID int64) (*domain.Resident, error)

	// UpdatePaymentStatus changes a resident's payment status.
	UpdatePaymentStatus(ctx context.Context, residentID int64, status domain.PaymentStatus) (*domain.Resident, error)

	// DeleteResident removes a resident.
	DeleteResident(ctx context.Context, residentID int64) error
}

// ResidentSvcFacade combines all resident-related service interfaces
type ResidentSvcFacade interface {
	ResidentReaderSvc
	ResidentWriterSvc
}
