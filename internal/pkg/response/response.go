package response

import "github.com/gin-gonic/gin"

// Every endpoint replies with a "message" and, for reads, a "data" payload.

func Data(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"data":    data,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func ValidationFailed(c *gin.Context, statusCode int, message string, errors any) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"errors":  errors,
	})
}
