package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MirrorRequestHeaders answers a preflight by allowing exactly the headers
// the caller asked for. It must run before cors.New, which only writes
// Access-Control-Allow-Headers when a static list is configured.
func MirrorRequestHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}
