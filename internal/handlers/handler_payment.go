package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to project payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/projects/:projectID/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.recordPayment)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends an inbound payment. Requires an active invoice and a positive open amount.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Payment not allowed in the current state"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /projects/{projectID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), projectID, req, userID)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listPayments godoc
// @Summary List project payments
// @Description Lists payments newest first with token pagination
// @Tags payments
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   limit query int false "Page size (max 100)"
// @Param   nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /projects/{projectID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), projectID, params)
	if err != nil {
		respondServiceError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, resp)
}
