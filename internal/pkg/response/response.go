package response

import "github.com/gin-gonic/gin"

// JSON writes data as is. List and item payloads are keyed by resource,
// e.g. {"games": [...]} or {"platform": {...}}.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

func Created(c *gin.Context, statusCode int, message string, id int64) {
	c.JSON(statusCode, gin.H{
		"message": message,
		"id":      id,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// Abort is Error for middleware: it stops the handler chain.
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"error": message,
	})
}
