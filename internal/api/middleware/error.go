package middleware

import (
	"net/http"

	"landgem/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics in handlers and converts them to the
// API's standard error shape. The core model never panics on bad input --
// a panic here is a programming error, not a caller mistake.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
