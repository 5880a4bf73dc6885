package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger logs each request once after it completes. Server errors log at
// Error, client errors at Warn.
func Logger(l logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": GetRequestID(c),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed.")
		case status >= 400:
			entry.Warn("Request rejected.")
		default:
			entry.Info("Request handled.")
		}
	}
}
