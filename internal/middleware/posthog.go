package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"

	"github.com/SscSPs/pos_ledger/internal/utils"
)

// LedgerWriteEvent is captured for every successful mutating API call.
const LedgerWriteEvent = "ledger_write"

// AnalyticsMiddleware records successful writes. Reads are not tracked.
func AnalyticsMiddleware(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !analytics.Enabled() || c.Request.Method == http.MethodGet || c.FullPath() == "" {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		actor, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := posthog.NewProperties().
			Set("route", c.FullPath()).
			Set("method", c.Request.Method).
			Set("status_code", c.Writer.Status()).
			Set("auth_method", GetAuthMethod(c))
		for _, p := range c.Params {
			props.Set("param_"+p.Key, p.Value)
		}
		analytics.Capture(actor, LedgerWriteEvent, props)
	}
}

// CaptureEvent sends a named event for the request's actor.
func CaptureEvent(c *gin.Context, analytics *utils.AnalyticsClient, event string, props posthog.Properties) {
	if !analytics.Enabled() {
		return
	}
	actor, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	if props == nil {
		props = posthog.NewProperties()
	}
	analytics.Capture(actor, event, props.Set("route", c.FullPath()))
}
