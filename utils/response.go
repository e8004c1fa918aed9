package utils

import (
	"github.com/gin-gonic/gin"
)

// Every endpoint replies with the same envelope: status code, a short
// client-facing message, and either a data payload or an error detail.

// JSONResponse sends a success envelope with the given payload.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends an error envelope. message is the client-facing text;
// err carries the wrapped detail for debugging.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
