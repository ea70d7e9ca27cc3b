package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/config"
	"github.com/mahimathinakaran/wastewise/logger"
	"github.com/mahimathinakaran/wastewise/routes"
	"github.com/mahimathinakaran/wastewise/storage"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting WasteWise API",
		zap.String("environment", cfg.Environment),
		zap.String("database", cfg.DBName),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
	)

	if cfg.IsDefaultSecret() {
		logger.Warn("using default SECRET_KEY, change this in production")
	}

	db := config.InitDB(cfg)

	store, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.SetupRoutes(r, db, store, cfg)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
