package services_test

import (
	"context"
	"testing"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/core/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ResidentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockResidentRepository
	service  portssvc.ResidentSvcFacade
}

func (suite *ResidentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockResidentRepository)
	suite.service = services.NewResidentService(suite.mockRepo)
}

func (suite *ResidentServiceTestSuite) TestCreateResident_Success() {
	ctx := context.Background()
	today := domain.Today()
	req := dto.CreateResidentRequest{
		Name:         "Maya Okafor",
		Email:        "maya@example.com",
		Phone:        "+31 6 1234 5678",
		RoomID:       2,
		BedNumber:    3,
		CheckInDate:  today,
		CheckOutDate: today.AddDays(30),
	}

	suite.mockRepo.On("SaveResident", ctx, mock.MatchedBy(func(r domain.Resident) bool {
		return r.Name == req.Name && r.PaymentStatus == domain.PaymentStatusPending
	})).Return(int64(5), nil).Once()

	resident, err := suite.service.CreateResident(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), resident.ID)
	suite.Equal(domain.PaymentStatusPending, resident.PaymentStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestCreateResident_CheckOutBeforeCheckIn() {
	ctx := context.Background()
	today := domain.Today()
	req := dto.CreateResidentRequest{
		Name:         "Maya Okafor",
		Email:        "maya@example.com",
		Phone:        "+31 6 1234 5678",
		RoomID:       2,
		BedNumber:    3,
		CheckInDate:  today,
		CheckOutDate: today.AddDays(-1),
	}

	resident, err := suite.service.CreateResident(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resident)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveResident", mock.Anything, mock.Anything)
}

func (suite *ResidentServiceTestSuite) TestGetCurrentResidents_FilterByPaymentStatus() {
	ctx := context.Background()
	residents := []domain.Resident{
		{ID: 1, Name: "Maya Okafor", PaymentStatus: domain.PaymentStatusPaid},
		{ID: 2, Name: "Jonas Richter", PaymentStatus: domain.PaymentStatusPending},
		{ID: 3, Name: "Aisha Khan", PaymentStatus: domain.PaymentStatusPending},
	}

	suite.mockRepo.On("ListCurrentResidents", ctx, mock.AnythingOfType("domain.Date")).Return(residents, nil).Once()

	got, err := suite.service.GetCurrentResidents(ctx, dto.ListFilter{Status: "pending"})

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal("Jonas Richter", got[0].Name)
	suite.Equal("Aisha Khan", got[1].Name)
}

func (suite *ResidentServiceTestSuite) TestGetCurrentResidents_SearchByRoomID() {
	ctx := context.Background()
	residents := []domain.Resident{
		{ID: 1, Name: "Maya Okafor", RoomID: 12, PaymentStatus: domain.PaymentStatusPaid},
		{ID: 2, Name: "Jonas Richter", RoomID: 3, PaymentStatus: domain.PaymentStatusPaid},
	}

	suite.mockRepo.On("ListCurrentResidents", ctx, mock.AnythingOfType("domain.Date")).Return(residents, nil).Once()

	got, err := suite.service.GetCurrentResidents(ctx, dto.ListFilter{Search: "12", Status: dto.StatusFilterAll})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(int64(12), got[0].RoomID)
}

func (suite *ResidentServiceTestSuite) TestCheckOut_SetsToday() {
	ctx := context.Background()
	today := domain.Today()
	updated := &domain.Resident{ID: 6, Name: "Maya Okafor", CheckOutDate: today}

	suite.mockRepo.On("CheckOutResident", ctx, int64(6), mock.MatchedBy(func(d domain.Date) bool {
		return d.Equal(today)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindResidentByID", ctx, int64(6)).Return(updated, nil).Once()

	resident, err := suite.service.CheckOut(ctx, 6)

	suite.Require().NoError(err)
	suite.True(resident.CheckOutDate.Equal(today))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ResidentServiceTestSuite) TestUpdatePaymentStatus_InvalidStatus() {
	ctx := context.Background()

	resident, err := suite.service.UpdatePaymentStatus(ctx, 6, domain.PaymentStatus("delinquent"))

	suite.Require().Error(err)
	suite.Nil(resident)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateResidentPaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResidentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResidentServiceTestSuite))
}
