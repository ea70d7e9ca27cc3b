package config

import (
	"fmt"
	"log"

	"github.com/mahimathinakaran/wastewise/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on for the
	// concurrent-registration race.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Report{})
}
