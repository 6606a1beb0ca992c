package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// AdminChecker reports whether the current session may use admin routes.
type AdminChecker interface {
	IsAdmin() bool
}

// RequestID keeps an incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		}
		if reqID := c.Writer.Header().Get(RequestIDHeader); reqID != "" {
			fields["request_id"] = reqID
		}
		logger.WithFields(fields).Debug("Incoming request")

		c.Next()

		fields["status_code"] = c.Writer.Status()
		fields["latency_ms"] = time.Since(startTime).Milliseconds()
		entry := logger.WithFields(fields)

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case status >= http.StatusInternalServerError:
			entry.Error("Request completed with server error")
		case status >= http.StatusBadRequest:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// RequireAdmin rejects the request with 403 unless the session is an admin.
func RequireAdmin(auth AdminChecker, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAdmin() {
			logger.Warnf("Middleware: Admin access denied for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"Status":  "Fail",
				"Message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
