package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"aiservice/internal/metrics"
)

// Recovery turns a handler panic into a generic 500 response.
// m may be nil when metrics are disabled.
func Recovery(log *slog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			if m != nil {
				m.PanicCounter.Inc()
			}
			log.Error("panic recovered",
				"error", fmt.Sprint(rec),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}()
		c.Next()
	}
}
