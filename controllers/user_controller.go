package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/logger"
	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/repositories"
	"github.com/mahimathinakaran/wastewise/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserController struct {
	Users *repositories.UserRepository
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Users: repositories.NewUserRepository(db)}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		Name  string `json:"name" binding:"omitempty,min=2,max=100"`
		Email string `json:"email" binding:"omitempty,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := uc.Users.UpdateProfile(user.ID, input.Name, input.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, models.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		default:
			logger.Error("profile update failed", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": gin.H{
			"id":    updated.ID,
			"name":  updated.Name,
			"email": updated.Email,
			"role":  updated.Role,
		},
	})
}

func (uc *UserController) UpdatePassword(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.Users.UpdatePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		if errors.Is(err, models.ErrInvalidCurrentPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}
		logger.Error("password update failed", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	logger.Info("password updated", zap.String("email", user.Email))

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
