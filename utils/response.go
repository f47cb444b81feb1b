package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the standard {"message": ...} body used across the API.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
