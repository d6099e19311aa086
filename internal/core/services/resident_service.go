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

type residentService struct {
	BaseService
	residentRepo portsrepo.ResidentRepositoryFacade
}

// NewResidentService creates a new resident service.
func NewResidentService(residentRepo portsrepo.ResidentRepositoryFacade) portssvc.ResidentSvcFacade {
	return &residentService{
		residentRepo: residentRepo,
	}
}

var _ portssvc.ResidentSvcFacade = (*residentService)(nil)

// CreateResident registers a new resident. New residents start with a
// pending payment status.
func (s *residentService) CreateResident(ctx context.Context, req dto.CreateResidentRequest) (*domain.Resident, error) {
	if req.CheckOutDate.Before(req.CheckInDate.Time) {
		return nil, fmt.Errorf("%w: check-out date precedes check-in date", apperrors.ErrValidation)
	}

	now := time.Now()
	resident := domain.Resident{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		RoomID:        req.RoomID,
		BedNumber:     req.BedNumber,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		PaymentStatus: domain.PaymentStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	id, err := s.residentRepo.SaveResident(ctx, resident)
	if err != nil {
		s.LogError(ctx, err, "failed to create resident", "name", req.Name)
		return nil, err
	}
	resident.ID = id

	s.LogInfo(ctx, "resident created", "residentID", id, "roomID", resident.RoomID)
	return &resident, nil
}

// GetResidentByID retrieves a specific resident by their ID.
func (s *residentService) GetResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error) {
	return s.residentRepo.FindResidentByID(ctx, residentID)
}

// ListResidents retrieves all residents.
func (s *residentService) ListResidents(ctx context.Context) ([]domain.Resident, error) {
	return s.residentRepo.ListResidents(ctx)
}

// GetCurrentResidents retrieves residents still staying today, narrowed by
// the given filter. Search covers name, email, phone and room id; the status
// filter matches the payment status exactly, with "all" as a bypass.
func (s *residentService) GetCurrentResidents(ctx context.Context, filter dto.ListFilter) ([]domain.Resident, error) {
	residents, err := s.residentRepo.ListCurrentResidents(ctx, domain.Today())
	if err != nil {
		s.LogError(ctx, err, "failed to list current residents")
		return nil, err
	}

	return filtering.Apply(residents, filter.Search, filter.Status,
		func(r domain.Resident) []string {
			return []string{r.Name, r.Email, r.Phone, strconv.FormatInt(r.RoomID, 10)}
		},
		func(r domain.Resident) string { return string(r.PaymentStatus) },
	), nil
}

// GetResidentsByRoom retrieves residents assigned to a room.
func (s *residentService) GetResidentsByRoom(ctx context.Context, roomID int64) ([]domain.Resident, error) {
	return s.residentRepo.ListResidentsByRoom(ctx, roomID)
}

// UpdateResident applies the non-nil fields of the request to an existing
// resident.
func (s *residentService) UpdateResident(ctx context.Context, residentID int64, req dto.UpdateResidentRequest) (*domain.Resident, error) {
	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		resident.Name = *req.Name
	}
	if req.Email != nil {
		resident.Email = *req.Email
	}
	if req.Phone != nil {
		resident.Phone = *req.Phone
	}
	if req.RoomID != nil {
		resident.RoomID = *req.RoomID
	}
	if req.BedNumber != nil {
		resident.BedNumber = *req.BedNumber
	}
	if req.CheckInDate != nil {
		resident.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		resident.CheckOutDate = *req.CheckOutDate
	}

	if resident.CheckOutDate.Before(resident.CheckInDate.Time) {
		return nil, fmt.Errorf("%w: check-out date precedes check-in date", apperrors.ErrValidation)
	}

	resident.LastUpdatedAt = time.Now()
	if err := s.residentRepo.UpdateResident(ctx, *resident); err != nil {
		s.LogError(ctx, err, "failed to update resident", "residentID", residentID)
		return nil, err
	}

	s.LogInfo(ctx, "resident updated", "residentID", residentID)
	return resident, nil
}

// CheckOut sets the resident's check-out date to today, ending their stay.
func (s *residentService) CheckOut(ctx context.Context, residentID int64) (*domain.Resident, error) {
	today := domain.Today()
	if err := s.residentRepo.CheckOutResident(ctx, residentID, today, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to check out resident", "residentID", residentID)
		return nil, err
	}

	s.LogInfo(ctx, "resident checked out", "residentID", residentID, "checkOutDate", today.String())
	return s.residentRepo.FindResidentByID(ctx, residentID)
}

// UpdatePaymentStatus changes a resident's payment status. The last payment
// timestamp is only touched by actual payment processing.
func (s *residentService) UpdatePaymentStatus(ctx context.Context, residentID int64, status domain.PaymentStatus) (*domain.Resident, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, status)
	}

	if err := s.residentRepo.UpdateResidentPaymentStatus(ctx, residentID, status, nil, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to update payment status", "residentID", residentID, "status", status)
		return nil, err
	}

	s.LogInfo(ctx, "resident payment status updated", "residentID", residentID, "status", status)
	return s.residentRepo.FindResidentByID(ctx, residentID)
}

// DeleteResident removes a resident.
func (s *residentService) DeleteResident(ctx context.Context, residentID int64) error {
	if err := s.residentRepo.DeleteResident(ctx, residentID); err != nil {
		s.LogError(ctx, err, "failed to delete resident", "residentID", residentID)
		return err
	}
	s.LogInfo(ctx, "resident deleted", "residentID", residentID)
	return nil
}
