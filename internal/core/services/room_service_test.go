package services_test

import (
	"context"
	"testing"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/core/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRoomRepository
	service  portssvc.RoomSvcFacade
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRoomRepository)
	suite.service = services.NewRoomService(suite.mockRepo)
}

func (suite *RoomServiceTestSuite) TestCreateRoom_StartsAvailableAndEmpty() {
	ctx := context.Background()
	req := dto.CreateRoomRequest{
		RoomNumber:  "A-101",
		Type:        "dorm",
		Capacity:    6,
		PricePerBed: decimal.RequireFromString("25.00"),
	}

	suite.mockRepo.On("SaveRoom", ctx, mock.MatchedBy(func(r domain.Room) bool {
		return r.RoomNumber == "A-101" && r.Status == domain.RoomStatusAvailable && r.CurrentOccupancy == 0
	})).Return(int64(1), nil).Once()

	room, err := suite.service.CreateRoom(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), room.ID)
	suite.Equal(domain.RoomStatusAvailable, room.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_RejectsOccupancyAboveCapacity() {
	ctx := context.Background()
	existing := &domain.Room{
		ID:               1,
		RoomNumber:       "A-101",
		Type:             domain.RoomTypeDorm,
		Capacity:         4,
		CurrentOccupancy: 2,
		Status:           domain.RoomStatusOccupied,
	}
	over := 5

	suite.mockRepo.On("FindRoomByID", ctx, int64(1)).Return(existing, nil).Once()

	room, err := suite.service.UpdateRoom(ctx, 1, dto.UpdateRoomRequest{CurrentOccupancy: &over})

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRoom", mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_RejectsEmptyOccupiedRoom() {
	ctx := context.Background()
	existing := &domain.Room{
		ID:               1,
		RoomNumber:       "A-101",
		Capacity:         4,
		CurrentOccupancy: 2,
		Status:           domain.RoomStatusOccupied,
	}
	empty := 0

	suite.mockRepo.On("FindRoomByID", ctx, int64(1)).Return(existing, nil).Once()

	room, err := suite.service.UpdateRoom(ctx, 1, dto.UpdateRoomRequest{CurrentOccupancy: &empty})

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RoomServiceTestSuite) TestListRooms_SearchAndStatusAreANDed() {
	ctx := context.Background()
	rooms := []domain.Room{
		{ID: 1, RoomNumber: "A-101", Type: domain.RoomTypeDorm, Status: domain.RoomStatusAvailable},
		{ID: 2, RoomNumber: "A-102", Type: domain.RoomTypeDorm, Status: domain.RoomStatusMaintenance},
		{ID: 3, RoomNumber: "B-201", Type: domain.RoomTypePrivate, Status: domain.RoomStatusAvailable},
	}

	suite.mockRepo.On("ListRooms", ctx).Return(rooms, nil).Once()

	got, err := suite.service.ListRooms(ctx, dto.ListFilter{Search: "a-1", Status: "available"})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("A-101", got[0].RoomNumber)
}

func (suite *RoomServiceTestSuite) TestUpdateRoomStatus_InvalidStatus() {
	ctx := context.Background()

	room, err := suite.service.UpdateRoomStatus(ctx, 1, domain.RoomStatus("demolished"))

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRoomStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestUpdateRoomStatus_Success() {
	ctx := context.Background()
	existing := &domain.Room{
		ID:               1,
		RoomNumber:       "A-101",
		Type:             domain.RoomTypeDorm,
		Capacity:         4,
		CurrentOccupancy: 2,
		Status:           domain.RoomStatusOccupied,
	}

	suite.mockRepo.On("FindRoomByID", ctx, int64(1)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateRoomStatus", ctx, int64(1), domain.RoomStatusMaintenance, mock.AnythingOfType("time.Time")).Return(nil).Once()

	room, err := suite.service.UpdateRoomStatus(ctx, 1, domain.RoomStatusMaintenance)

	suite.Require().NoError(err)
	suite.Equal(domain.RoomStatusMaintenance, room.Status)
	suite.Equal(2, room.CurrentOccupancy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestUpdateRoomStatus_AvailableWithOccupantsRejected() {
	ctx := context.Background()
	existing := &domain.Room{
		ID:               1,
		RoomNumber:       "A-101",
		Type:             domain.RoomTypeDorm,
		Capacity:         4,
		CurrentOccupancy: 2,
		Status:           domain.RoomStatusOccupied,
	}

	suite.mockRepo.On("FindRoomByID", ctx, int64(1)).Return(existing, nil).Once()

	room, err := suite.service.UpdateRoomStatus(ctx, 1, domain.RoomStatusAvailable)

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRoomStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoomServiceTestSuite) TestUpdateRoomStatus_OccupiedEmptyRoomRejected() {
	ctx := context.Background()
	existing := &domain.Room{
		ID:               2,
		RoomNumber:       "B-202",
		Type:             domain.RoomTypePrivate,
		Capacity:         2,
		CurrentOccupancy: 0,
		Status:           domain.RoomStatusAvailable,
	}

	suite.mockRepo.On("FindRoomByID", ctx, int64(2)).Return(existing, nil).Once()

	room, err := suite.service.UpdateRoomStatus(ctx, 2, domain.RoomStatusOccupied)

	suite.Require().Error(err)
	suite.Nil(room)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRoomStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
