package middleware

import (
	"errors"
	"net/http"

	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/internal/domain"
	"go-contact-relay/pkg/apperror"
	"go-contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				logger.Log.Warn("Request failed",
					"request_id", c.GetString(domain.KeyRequestID),
					"status", appErr.Code,
					"message", appErr.Message,
				)
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Unhandled error",
					"request_id", c.GetString(domain.KeyRequestID),
					"error", err,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
