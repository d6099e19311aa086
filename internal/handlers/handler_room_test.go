package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/handlers"
	"github.com/hostelhub/hostelhub_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RoomService ---
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetRoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) ListRooms(ctx context.Context, filter dto.ListFilter) ([]domain.Room, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) GetAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) GetMaintenanceAlerts(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) UpdateRoom(ctx context.Context, roomID int64, req dto.UpdateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, roomID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) UpdateRoomStatus(ctx context.Context, roomID int64, status domain.RoomStatus) (*domain.Room, error) {
	args := m.Called(ctx, roomID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) DeleteRoom(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.RoomSvcFacade = (*MockRoomService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite ---
type RoomHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockRoomService      *MockRoomService
	mockReportingService *MockReportingService
}

func (suite *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockRoomService = new(MockRoomService)
	suite.mockReportingService = new(MockReportingService)

	// IsProduction skips the swagger routes; facades not under test stay nil
	// since route registration never invokes them.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Room:      suite.mockRoomService,
		Reporting: suite.mockReportingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *RoomHandlerTestSuite) TestListRooms_ForwardsFilter() {
	expected := []domain.Room{
		{
			ID:               1,
			RoomNumber:       "A-101",
			Type:             domain.RoomTypeDorm,
			Capacity:         4,
			CurrentOccupancy: 2,
			PricePerBed:      decimal.NewFromInt(25),
			Status:           domain.RoomStatusOccupied,
		},
	}

	suite.mockRoomService.On("ListRooms",
		mock.Anything,
		dto.ListFilter{Search: "a-1", Status: "occupied"},
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rooms?search=a-1&status=occupied", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.RoomResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.Equal("A-101", body[0].RoomNumber)
	suite.Equal("occupied", body[0].Status)

	suite.mockRoomService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_Success() {
	created := &domain.Room{
		ID:          7,
		RoomNumber:  "B-204",
		Type:        domain.RoomTypePrivate,
		Capacity:    2,
		PricePerBed: decimal.RequireFromString("45.50"),
		Status:      domain.RoomStatusAvailable,
	}

	suite.mockRoomService.On("CreateRoom",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateRoomRequest) bool {
			return req.RoomNumber == "B-204" && req.Type == "private" && req.Capacity == 2
		}),
	).Return(created, nil).Once()

	payload := map[string]any{
		"roomNumber":  "B-204",
		"type":        "private",
		"capacity":    2,
		"pricePerBed": "45.50",
	}
	raw, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rooms", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.RoomResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(7), body.ID)
	suite.Equal("available", body.Status)

	suite.mockRoomService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_MissingFieldsRejectedBeforeService() {
	payload := map[string]any{"roomNumber": "B-204"}
	raw, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rooms", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRoomService.AssertNotCalled(suite.T(), "CreateRoom")
}

func (suite *RoomHandlerTestSuite) TestGetRoom_NotFound() {
	suite.mockRoomService.On("GetRoomByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("room 99: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rooms/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockRoomService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestGetRoom_InvalidIDParam() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rooms/not-a-number", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRoomService.AssertNotCalled(suite.T(), "GetRoomByID")
}

func (suite *RoomHandlerTestSuite) TestUpdateRoomStatus_DuplicateMapsToConflict() {
	suite.mockRoomService.On("UpdateRoomStatus", mock.Anything, int64(3), domain.RoomStatusMaintenance).
		Return(nil, fmt.Errorf("room number taken: %w", apperrors.ErrDuplicate)).Once()

	raw, _ := json.Marshal(map[string]string{"status": "maintenance"})
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/rooms/3/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockRoomService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestGetDashboardStats_Success() {
	stats := &domain.DashboardStats{
		TotalRooms:      3,
		AvailableRooms:  1,
		TotalResidents:  4,
		OccupancyRate:   67,
		TodayCheckIns:   1,
		TodayCheckOuts:  0,
		MonthlyRevenue:  decimal.RequireFromString("210.00"),
		PendingPayments: 2,
	}
	suite.mockReportingService.On("GetDashboardStats", mock.Anything).Return(stats, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DashboardStatsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(3, body.TotalRooms)
	suite.Equal(67, body.OccupancyRate)
	suite.True(decimal.RequireFromString("210.00").Equal(body.MonthlyRevenue))

	suite.mockReportingService.AssertExpectations(suite.T())
	suite.mockRoomService.AssertNotCalled(suite.T(), "ListRooms")
}

// --- Run Test Suite ---
func TestRoomHandler(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}
