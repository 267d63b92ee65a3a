package response

import (
	"github.com/gin-gonic/gin"
)

// Status values carried in the response body and, in redirect mode, the
// status query parameter.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response standardizes the API JSON response
type Response struct {
	Status string `json:"status"`
	// Message is null on success and explains the failure otherwise.
	Message *string `json:"message"`
}

// Success sends a success response
func Success(c *gin.Context, code int) {
	c.JSON(code, Response{Status: StatusSuccess})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: StatusError, Message: &message})
}
