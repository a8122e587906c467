package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// Incoming X-Request-ID values longer than this are replaced, to keep log
// fields bounded.
const requestIDMaxLen = 64

// RequestID propagates the caller's X-Request-ID or generates one, storing
// it on the context and echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}

// GetRequestID returns the request's trace ID, empty when the middleware did
// not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
