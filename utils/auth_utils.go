package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/models"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user placed in the gin context by the auth
// middleware, or nil outside an authenticated request.
func GetUser(c *gin.Context) *models.User {
	value, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if user, ok := value.(*models.User); ok {
		return user
	}
	return nil
}

// SetUser stores the authenticated user in the gin context.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(string(UserContextKey), user)
}
