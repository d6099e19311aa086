package domain

import "github.com/shopspring/decimal"

// DashboardStats is a point-in-time snapshot of hostel-wide figures derived
// from the room, resident and booking collections. It holds no ownership of
// the underlying data and is recomputed on demand.
type DashboardStats struct {
	TotalRooms      int             `json:"totalRooms"`
	AvailableRooms  int             `json:"availableRooms"`
	TotalResidents  int             `json:"totalResidents"`
	OccupancyRate   int             `json:"occupancyRate"` // Percentage, 0-100
	TodayCheckIns   int             `json:"todayCheckIns"`
	TodayCheckOuts  int             `json:"todayCheckOuts"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	PendingPayments int             `json:"pendingPayments"`
}
