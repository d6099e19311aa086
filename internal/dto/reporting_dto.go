package dto

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse is the dashboard statistics snapshot returned to
// the presentation layer.
type DashboardStatsResponse struct {
	TotalRooms      int             `json:"totalRooms"`
	AvailableRooms  int             `json:"availableRooms"`
	TotalResidents  int             `json:"totalResidents"`
	OccupancyRate   int             `json:"occupancyRate"`
	TodayCheckIns   int             `json:"todayCheckIns"`
	TodayCheckOuts  int             `json:"todayCheckOuts"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	PendingPayments int             `json:"pendingPayments"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to DashboardStatsResponse DTO
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalRooms:      s.TotalRooms,
		AvailableRooms:  s.AvailableRooms,
		TotalResidents:  s.TotalResidents,
		OccupancyRate:   s.OccupancyRate,
		TodayCheckIns:   s.TodayCheckIns,
		TodayCheckOuts:  s.TodayCheckOuts,
		MonthlyRevenue:  s.MonthlyRevenue,
		PendingPayments: s.PendingPayments,
	}
}
