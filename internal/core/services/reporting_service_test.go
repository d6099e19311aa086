package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRoomRepo     *MockRoomRepository
	mockResidentRepo *MockResidentRepository
	mockBookingRepo  *MockBookingRepository
	service          portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockResidentRepo = new(MockResidentRepository)
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.service = services.NewReportingService(suite.mockRoomRepo, suite.mockResidentRepo, suite.mockBookingRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_Success() {
	ctx := context.Background()
	today := domain.Today()

	rooms := []domain.Room{
		{ID: 1, RoomNumber: "A-101", Capacity: 4, CurrentOccupancy: 3, Status: domain.RoomStatusOccupied},
		{ID: 2, RoomNumber: "A-102", Capacity: 2, CurrentOccupancy: 1, Status: domain.RoomStatusOccupied},
		{ID: 3, RoomNumber: "B-201", Capacity: 0, CurrentOccupancy: 0, Status: domain.RoomStatusAvailable},
	}
	residents := []domain.Resident{
		{ID: 1, PaymentStatus: domain.PaymentStatusPaid},
		{ID: 2, PaymentStatus: domain.PaymentStatusPending},
		{ID: 3, PaymentStatus: domain.PaymentStatusOverdue},
	}
	bookings := []domain.Booking{
		{ID: 1, Status: domain.BookingStatusConfirmed, CheckInDate: today, CheckOutDate: today.AddDays(3), PaymentStatus: domain.PaymentStatusPaid, TotalAmount: decimal.RequireFromString("150.00")},
		{ID: 2, Status: domain.BookingStatusConfirmed, CheckInDate: today.AddDays(-2), CheckOutDate: today, PaymentStatus: domain.PaymentStatusPending, TotalAmount: decimal.RequireFromString("80.00")},
		{ID: 3, Status: domain.BookingStatusPending, CheckInDate: today, CheckOutDate: today.AddDays(1), PaymentStatus: domain.PaymentStatusPaid, TotalAmount: decimal.RequireFromString("60.00")},
	}

	suite.mockRoomRepo.On("ListRooms", ctx).Return(rooms, nil).Once()
	suite.mockResidentRepo.On("ListCurrentResidents", ctx, mock.AnythingOfType("domain.Date")).Return(residents, nil).Once()
	suite.mockBookingRepo.On("ListBookings", ctx).Return(bookings, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(3, stats.TotalRooms)
	suite.Equal(1, stats.AvailableRooms)
	suite.Equal(3, stats.TotalResidents)
	// 4 occupants of 6 beds rounds to 67%.
	suite.Equal(67, stats.OccupancyRate)
	// Pending bookings do not count toward check-ins.
	suite.Equal(1, stats.TodayCheckIns)
	suite.Equal(1, stats.TodayCheckOuts)
	suite.Equal(2, stats.PendingPayments)
	// Paid pending booking totals: 150.00 + 60.00.
	suite.True(stats.MonthlyRevenue.Equal(decimal.RequireFromString("210.00")), "got %s", stats.MonthlyRevenue)

	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockResidentRepo.AssertExpectations(suite.T())
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_ZeroCapacity() {
	ctx := context.Background()

	suite.mockRoomRepo.On("ListRooms", ctx).Return([]domain.Room{}, nil).Once()
	suite.mockResidentRepo.On("ListCurrentResidents", ctx, mock.AnythingOfType("domain.Date")).Return([]domain.Resident{}, nil).Once()
	suite.mockBookingRepo.On("ListBookings", ctx).Return([]domain.Booking{}, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, stats.OccupancyRate)
	suite.Equal(0, stats.TotalRooms)
	suite.True(stats.MonthlyRevenue.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_RoomError() {
	ctx := context.Background()
	repoErr := errors.New("db down")

	suite.mockRoomRepo.On("ListRooms", ctx).Return(nil, repoErr).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, repoErr)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
