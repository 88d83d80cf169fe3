package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "discount-club.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to their HTTP status
func Error(c *gin.Context, err error) {
	status := domainerrors.StatusFor(err)

	message := err.Error()
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == 500 {
		// Internal failures are returned opaquely; the details go to the log.
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}
