package middleware

import (
	"net/http"
	"strings"

	"github.com/abuyamnglobal-com/tajheez/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events.
// With authentication disabled the request id doubles as the distinct id, so
// usage is still countable without identifying anyone.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Event name from the route path, e.g. "/api/transactions" -> "api_transactions".
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(c.Writer.Header().Get("X-Request-ID"), eventName, props)
	}
}
