package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const customerIDHeader = "X-Customer-Id"

// CustomerID extracts the caller's customer id from the request header and
// stores it on the context for handlers and the request logger.
func CustomerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(customerIDHeader)); id != "" {
			c.Set("customerId", id)
		}
		c.Next()
	}
}

// CustomerIDFromContext returns the customer id set by CustomerID, or "".
func CustomerIDFromContext(c *gin.Context) string {
	if v, ok := c.Get("customerId"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
