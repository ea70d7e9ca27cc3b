package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSecret is the placeholder signing key shipped in .env.example. Running
// with it in production is unsafe; main logs a warning when it is in use.
const DefaultSecret = "your-secret-key-change-in-production"

type Config struct {
	Environment string
	Port        string
	LogLevel    string
	LogFormat   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string

	// StorageBackend selects where report images land: "local" writes under
	// UploadDir and serves them at /uploads, "r2" pushes to the R2 bucket.
	StorageBackend string
	UploadDir      string
	R2             R2Config
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

// Load builds the process configuration from the environment. The returned
// struct is read-only after startup; nothing reads env vars past this point.
func Load() *Config {
	// Missing .env is fine in production, variables come from the environment.
	godotenv.Load()

	expireMinutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440) // 24 hours default

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "wastewise"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTSecret: getEnv("SECRET_KEY", DefaultSecret),
		TokenTTL:  time.Duration(expireMinutes) * time.Minute,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		R2: R2Config{
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
			PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
			Region:          "auto",
		},
	}
}

func (c *Config) IsDefaultSecret() bool {
	return c.JWTSecret == DefaultSecret
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
