package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker is the sink for API usage events. *utils.AnalyticsClient
// implements it.
type EventTracker interface {
	Enabled() bool
	Capture(distinctID string, event string, properties map[string]any)
}

// untrackedPaths are never reported as usage events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware reports each successful API call as a usage event keyed
// by the authenticated user. Failed requests and anonymous requests are not
// tracked.
func AnalyticsMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.Enabled() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		// "/api/v1/documents/:id" becomes "api_v1_documents_:id". An empty
		// FullPath means no route matched.
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		tracker.Capture(userID, eventName, props)
	}
}
