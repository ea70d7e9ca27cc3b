package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mahimathinakaran/wastewise/config"
	"github.com/mahimathinakaran/wastewise/controllers"
	"github.com/mahimathinakaran/wastewise/middleware"
	"github.com/mahimathinakaran/wastewise/repositories"
	"github.com/mahimathinakaran/wastewise/storage"
	"gorm.io/gorm"
)

// SetupRoutes wires the HTTP surface. Rate limits per route follow the
// abuse-sensitivity of each operation: auth and password endpoints tightest,
// report updates loosest.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Store, cfg *config.Config) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, cfg)
	userController := controllers.NewUserController(db)
	reportController := controllers.NewReportController(db, store)
	healthController := controllers.NewHealthController(db, cfg.Environment)

	userRepo := repositories.NewUserRepository(db)

	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", healthController.Root)
	r.GET("/health", middleware.RateLimit(10, time.Minute), healthController.Check)

	// Uploaded images are publicly readable when stored on local disk.
	if cfg.StorageBackend == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimit(5, time.Minute), authController.Register)
		auth.POST("/login", middleware.RateLimit(10, time.Minute), authController.Login)
	}

	// Protected routes
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware(cfg, userRepo))
	{
		user.GET("/profile", userController.GetProfile)
		user.PUT("/profile", middleware.RateLimit(10, time.Minute), userController.UpdateProfile)
		user.PUT("/password", middleware.RateLimit(5, time.Minute), userController.UpdatePassword)
	}

	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(cfg, userRepo))
	{
		reports.POST("/create", middleware.RateLimit(20, time.Minute), reportController.Create)
		reports.GET("/user/:id", reportController.ListUserReports)
		reports.GET("/stats", reportController.Stats)

		// Admin only
		reports.GET("/all", middleware.AdminOnly(), reportController.ListAllReports)
		reports.PUT("/update/:id", middleware.AdminOnly(), middleware.RateLimit(30, time.Minute), reportController.Update)
	}
}
