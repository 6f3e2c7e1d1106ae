package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":       true,
	"/swagger/*any": true,
}

// routeEvents names the business events behind the mutating routes.
var routeEvents = map[string]string{
	"POST /api/v1/projects":                                    "project_created",
	"PATCH /api/v1/projects/:projectID/flags":                  "project_flags_changed",
	"PUT /api/v1/projects/:projectID/positions":                "positions_saved",
	"POST /api/v1/projects/:projectID/positions":               "position_added",
	"PUT /api/v1/projects/:projectID/positions/:positionID":    "position_updated",
	"DELETE /api/v1/projects/:projectID/positions/:positionID": "position_deleted",
	"POST /api/v1/projects/:projectID/payments":                "payment_recorded",
	"POST /api/v1/projects/:projectID/invoices":                "invoice_created",
	"PATCH /api/v1/invoices/:invoiceID/status":                 "invoice_status_changed",
	"POST /api/v1/invoices/:invoiceID/cancel":                  "invoice_cancelled",
}

// EventNameFor maps a request to its analytics event name.
// Unknown routes fall back to the route path, e.g. "/api/v1/reports/margins" -> "api_v1_reports_margins".
func EventNameFor(method, fullPath string) string {
	if name, ok := routeEvents[method+" "+fullPath]; ok {
		return name
	}
	name := strings.TrimPrefix(fullPath, "/")
	return strings.ReplaceAll(name, "/", "_")
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		// Only successful requests become events
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventNameFor(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
