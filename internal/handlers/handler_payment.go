package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.processPayment)
		payments.GET("", h.getAllPayments)
		payments.GET("/stats", h.getPaymentStats)
		payments.GET("/resident/:residentID", h.getPaymentHistory)
		payments.GET("/:id", h.getPaymentByID)
		payments.POST("/:id/refund", h.refundPayment)
	}
}

// processPayment godoc
// @Summary Process a payment
// @Description Charges a resident, applying the processing fee and marking the resident paid
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.ProcessPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 502 {object} map[string]string "Payment gateway declined"
// @Failure 500 {object} map[string]string "Failed to process payment"
// @Router /payments [post]
func (h *paymentHandler) processPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// refundPayment godoc
// @Summary Refund a payment
// @Description Records a negative-amount payment back-referencing the original completed payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   refund body dto.RefundPaymentRequest true "Refund amount"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment not refundable"
// @Failure 500 {object} map[string]string "Failed to refund payment"
// @Router /payments/{id}/refund [post]
func (h *paymentHandler) refundPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RefundPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	refund, err := h.paymentService.RefundPayment(c.Request.Context(), paymentID, req.Amount)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to refund payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(refund))
}

// getAllPayments godoc
// @Summary List all payments
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) getAllPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payments, err := h.paymentService.GetAllPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// getPaymentHistory godoc
// @Summary List a resident's payments
// @Tags payments
// @Produce  json
// @Param   residentID path int true "Resident ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments/resident/{residentID} [get]
func (h *paymentHandler) getPaymentHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "residentID")
	if !ok {
		return
	}

	payments, err := h.paymentService.GetPaymentHistory(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// getPaymentStats godoc
// @Summary Summarize payments
// @Description Aggregates paid and refunded totals, hostel-wide or for one resident
// @Tags payments
// @Produce  json
// @Param   residentId query int false "Limit the summary to one resident"
// @Success 200 {object} dto.PaymentStatsResponse
// @Failure 400 {object} map[string]string "Invalid residentId"
// @Failure 500 {object} map[string]string "Failed to compute payment stats"
// @Router /payments/stats [get]
func (h *paymentHandler) getPaymentStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var residentID *int64
	if raw := c.Query("residentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid residentId parameter"})
			return
		}
		residentID = &id
	}

	stats, err := h.paymentService.GetPaymentStats(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute payment stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentStatsResponse(stats))
}

// getPaymentByID godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path int true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Router /payments/{id} [get]
func (h *paymentHandler) getPaymentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
