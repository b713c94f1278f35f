package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		customerID, _ := c.Get("customerId")
		resumeID, _ := c.Get("resumeId")
		coverLetterID, _ := c.Get("coverLetterId")

		telemetry.Info("request.complete", map[string]any{
			"request_id":      RequestIDFromContext(c),
			"method":          c.Request.Method,
			"path":            c.Request.URL.Path,
			"status":          c.Writer.Status(),
			"duration_ms":     float64(latency.Microseconds()) / 1000.0,
			"customer_id":     customerID,
			"resume_id":       resumeID,
			"cover_letter_id": coverLetterID,
			"client_ip":       c.ClientIP(),
			"user_agent":      c.Request.UserAgent(),
		})
	}
}
