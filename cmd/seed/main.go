// Seeds the default admin account. Run once against a fresh database.
package main

import (
	"fmt"
	"log"

	"github.com/mahimathinakaran/wastewise/config"
	"github.com/mahimathinakaran/wastewise/models"
	"github.com/mahimathinakaran/wastewise/repositories"
)

const (
	adminName     = "Admin"
	adminEmail    = "admin@wastewise.com"
	adminPassword = "admin123"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	users := repositories.NewUserRepository(db)

	admin, err := users.Register(adminName, adminEmail, adminPassword, models.RoleAdmin)
	if err == models.ErrDuplicateEmail {
		fmt.Println("Admin user already exists, nothing to do")
		return
	}
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	fmt.Println("Admin user created successfully")
	fmt.Printf("   Email: %s\n", adminEmail)
	fmt.Printf("   ID: %d\n", admin.ID)
}
