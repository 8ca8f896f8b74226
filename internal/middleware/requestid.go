package middleware

import (
	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // UUID generation
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestIDMiddleware assigns every request a UUID, echoes it in the
// X-Request-ID response header and exposes a request-scoped logrus entry
// under "log" for the handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID") // Honor an inbound id if the proxy set one
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("requestID", id)
		c.Set("log", logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		}))
		c.Next()
	}
}

// Logger returns the request-scoped logrus entry, or a plain entry when the
// middleware did not run (tests exercising bare handlers).
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get("log"); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
