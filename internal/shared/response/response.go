package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON shape every endpoint answers with.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList adds the item count alongside the collection.
func SuccessList(c *gin.Context, status int, message string, data any, count int) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func Error(c *gin.Context, status int, message string, errs any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
