package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for dashboard statistics.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getDashboardStats)
	}
}

// getDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Recomputes the hostel-wide statistics snapshot from rooms, residents and bookings
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
