package handler

import (
	"github.com/gin-gonic/gin"
)

// GetUserID extracts the authenticated user ID from the gin context
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// GetUsername extracts the authenticated username from the gin context
func GetUsername(c *gin.Context) string {
	value, exists := c.Get("username")
	if !exists {
		return ""
	}
	username, _ := value.(string)
	return username
}
