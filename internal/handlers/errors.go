package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conflictCodes gives clients a stable reason for each 409.
var conflictCodes = []struct {
	err  error
	code string
}{
	{finance.ErrPositionsLocked, "positions_locked"},
	{finance.ErrInvoiceExists, "invoice_exists"},
	{finance.ErrPaymentNotAllowed, "payment_not_allowed"},
	{finance.ErrInvalidStatusTransition, "invalid_status_transition"},
	{finance.ErrSubmissionInProgress, "submission_in_progress"},
	{apperrors.ErrDuplicate, "duplicate"},
}

func conflictCode(err error) string {
	for _, c := range conflictCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "conflict"
}

// clientMessage prefers the message of an AppError over the wrapped chain.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

// respondServiceError maps a service error onto an HTTP response.
// Unexpected errors are logged and answered with fallback only.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		code := conflictCode(err)
		logger.Warn("Request conflicts with current state", slog.String("code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": clientMessage(err), "code": code})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requireUserID reads the verified user and answers 401 when it is missing.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
