package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Database
	DBPath      string
	BusyTimeout time.Duration

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// File storage
	UploadDir string
}

func Load() *Config {
	// Local .env is optional; real env vars win.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DBPath:      getEnv("DB_PATH", "tyforge.db"),
		BusyTimeout: parseDuration(getEnv("DB_BUSY_TIMEOUT", "10s"), 10*time.Second),

		JWTSecret: getEnv("JWT_SECRET", "local-secret-key-change-in-production"),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
