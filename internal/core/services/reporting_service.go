package services

import (
	"context"
	"math"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	roomRepo     portsrepo.RoomRepositoryFacade
	residentRepo portsrepo.ResidentRepositoryFacade
	bookingRepo  portsrepo.BookingRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(roomRepo portsrepo.RoomRepositoryFacade, residentRepo portsrepo.ResidentRepositoryFacade, bookingRepo portsrepo.BookingRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		roomRepo:     roomRepo,
		residentRepo: residentRepo,
		bookingRepo:  bookingRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardStats recomputes the dashboard snapshot from the current room,
// resident and booking collections. Occupancy is counted from room occupancy
// against total bed capacity; a hostel with no beds reports a 0% rate rather
// than dividing by zero. Revenue sums the amounts of paid bookings.
func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load rooms for dashboard")
		return nil, err
	}

	today := domain.Today()
	residents, err := s.residentRepo.ListCurrentResidents(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "failed to load current residents for dashboard")
		return nil, err
	}

	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load bookings for dashboard")
		return nil, err
	}

	stats := domain.DashboardStats{
		TotalRooms:     len(rooms),
		TotalResidents: len(residents),
		MonthlyRevenue: decimal.Zero,
	}

	var totalCapacity, totalOccupancy int
	for _, room := range rooms {
		totalCapacity += room.Capacity
		totalOccupancy += room.CurrentOccupancy
		if room.Status == domain.RoomStatusAvailable {
			stats.AvailableRooms++
		}
	}
	if totalCapacity > 0 {
		stats.OccupancyRate = int(math.Round(float64(totalOccupancy) / float64(totalCapacity) * 100))
	}

	for _, resident := range residents {
		if resident.PaymentStatus == domain.PaymentStatusPending || resident.PaymentStatus == domain.PaymentStatusOverdue {
			stats.PendingPayments++
		}
	}

	for _, booking := range bookings {
		if booking.ChecksInOn(today) {
			stats.TodayCheckIns++
		}
		if booking.ChecksOutOn(today) {
			stats.TodayCheckOuts++
		}
		if booking.PaymentStatus == domain.PaymentStatusPaid {
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(booking.TotalAmount)
		}
	}

	return &stats, nil
}
