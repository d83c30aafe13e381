package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// JSONFieldError reports a validation failure tied to one input field.
func JSONFieldError(c *gin.Context, status int, field string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": "validation_error", "field": field, "message": message},
	})
}
