package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/config"
	"github.com/mahimathinakaran/wastewise/logger"
	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/repositories"
	"github.com/mahimathinakaran/wastewise/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthController struct {
	Users  *repositories.UserRepository
	Config *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		Users:  repositories.NewUserRepository(db),
		Config: cfg,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,min=2,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Role == "" {
		input.Role = models.RoleUser
	}
	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be either \"user\" or \"admin\""})
		return
	}

	user, err := ac.Users.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := utils.GenerateToken(user.Email, []byte(ac.Config.JWTSecret), ac.Config.TokenTTL)
	if err != nil {
		logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	logger.Info("new account registered", zap.String("email", user.Email), zap.String("role", user.Role))

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be either \"user\" or \"admin\""})
		return
	}

	user, err := ac.Users.Authenticate(input.Email, input.Password, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, models.ErrRoleMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("This account is not registered as %s", input.Role)})
		default:
			logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	token, err := utils.GenerateToken(user.Email, []byte(ac.Config.JWTSecret), ac.Config.TokenTTL)
	if err != nil {
		logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	logger.Info("user logged in", zap.String("email", user.Email), zap.String("role", user.Role))

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
