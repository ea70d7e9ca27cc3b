package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiVersion = "1.0.0"

type HealthController struct {
	DB          *gorm.DB
	Environment string
}

func NewHealthController(db *gorm.DB, environment string) *HealthController {
	return &HealthController{DB: db, Environment: environment}
}

func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "WasteWise API is running",
		"version":     apiVersion,
		"status":      "running",
		"environment": hc.Environment,
	})
}

func (hc *HealthController) Check(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "unhealthy",
			"database":    "disconnected",
			"environment": hc.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    "connected",
		"environment": hc.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
