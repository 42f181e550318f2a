package response

import (
	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/apperr"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// FromError maps a service error onto the envelope using its kind.
func FromError(c *gin.Context, err error) {
	Error(c, apperr.HTTPStatus(err), string(apperr.KindOf(err)), apperr.Message(err))
}
