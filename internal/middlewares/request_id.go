package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// RequestID echoes a well-formed incoming X-Request-ID or issues a new one.
func RequestID(c *gin.Context) {
	id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
	if err != nil {
		id = uuid.New()
	}

	c.Set(requestIDKey, id.String())
	c.Header(RequestIDHeader, id.String())
	c.Next()
}

// GetRequestID returns the id stored by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
