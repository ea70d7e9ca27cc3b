package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/config"
	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/repositories"
	"github.com/mahimathinakaran/wastewise/utils"
)

// AuthMiddleware verifies the bearer token and loads the matching user into
// the request context.
func AuthMiddleware(cfg *config.Config, users *repositories.UserRepository) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		email, err := utils.ParseToken(bearerToken[1], secret)
		if err != nil {
			// Expired and invalid tokens get distinct messages.
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			}
			c.Abort()
			return
		}

		utils.SetUser(c, user)
		c.Next()
	}
}

// AdminOnly rejects requests from non-admin users. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
