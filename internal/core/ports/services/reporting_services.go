package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// ReportingService derives dashboard statistics from the room, resident and
// booking collections. The computation is a pure function of the snapshots it
// reads; it is recomputed on every call.
type ReportingService interface {
	// GetDashboardStats produces the current dashboard statistics snapshot.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
