package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/tyforge/tyforge-backend/internal/config"
	"github.com/tyforge/tyforge-backend/internal/database"
	"github.com/tyforge/tyforge-backend/internal/dto"
	"github.com/tyforge/tyforge-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func signupTestUser(t *testing.T, auth *AuthService, email string) *dto.SignupResponse {
	t.Helper()

	resp, err := auth.Signup(&dto.SignupRequest{
		Email:    email,
		Password: "secret-password",
		Name:     "Some Student",
		Phone:    "+91 1234567890",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	return resp
}

func mustUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		t.Fatalf("user %s not found: %v", email, err)
	}
	return &user
}
