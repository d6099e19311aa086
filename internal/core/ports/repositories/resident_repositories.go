package repositories

import (
	"context"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// ResidentReader defines read operations for resident data
type ResidentReader interface {
	// FindResidentByID retrieves a specific resident by their ID.
	FindResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error)

	// ListResidents retrieves all residents.
	ListResidents(ctx context.Context) ([]domain.Resident, error)

	// ListCurrentResidents retrieves residents whose check-out date is on or
	// after the given day.
	ListCurrentResidents(ctx context.Context, today domain.Date) ([]domain.Resident, error)

	// ListResidentsByRoom retrieves residents assigned to a room.
	ListResidentsByRoom(ctx context.Context, roomID int64) ([]domain.Resident, error)
}

// ResidentWriter defines write operations for resident data
type ResidentWriter interface {
	// SaveResident persists a new resident and returns the generated ID.
	SaveResident(ctx context.Context, resident domain.Resident) (int64, error)

	// UpdateResident updates an existing resident's details.
	UpdateResident(ctx context.Context, resident domain.Resident) error

	// CheckOutResident sets the resident's check-out date.
	CheckOutResident(ctx context.Context, residentID int64, checkOutDate domain.Date, updatedAt time.Time) error

	// UpdateResidentPaymentStatus updates a resident's payment status and,
	// when lastPaymentDate is non-nil, their last payment timestamp.
	UpdateResidentPaymentStatus(ctx context.Context, residentID int64, status domain.PaymentStatus, lastPaymentDate *time.Time, updatedAt time.Time) error

	// DeleteResident removes a resident.
	DeleteResident(ctx context.Context, residentID int64) error
}

// ResidentRepositoryFacade combines all resident-related repository interfaces
type ResidentRepositoryFacade interface {
	ResidentReader
	ResidentWriter
}

// ResidentRepositoryWithTx extends ResidentRepositoryFacade with transaction capabilities
type ResidentRepositoryWithTx interface {
	ResidentRepositoryFacade
	TransactionManager
}
