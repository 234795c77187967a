package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tyforge/tyforge-backend/internal/config"
	"github.com/tyforge/tyforge-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the SQLite database with foreign keys enforced and a fixed
// busy timeout, so concurrent writers wait instead of failing immediately.
// TranslateError makes the unique-email violation surface as
// gorm.ErrDuplicatedKey, which is the authoritative Conflict signal.
func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on",
		cfg.DBPath, cfg.BusyTimeout.Milliseconds())

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite serializes writers internally; one open connection avoids
	// in-process lock contention.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "path", cfg.DBPath)
	return nil
}

// Migrate runs AutoMigrate for all entities. Safe to invoke on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Service{},
		&models.UserService{},
		&models.Order{},
		&models.Project{},
		&models.Synopsis{},
		&models.Meeting{},
		&models.UserProject{},
		&models.AdminRequest{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
