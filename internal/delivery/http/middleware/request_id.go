package middleware

import (
	"go-contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags each request with an identifier for log correlation.
// An incoming X-Request-ID header is kept so traces survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(domain.KeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
