package database

import (
	"fmt"
	"time"

	"tweetline/backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and runs migrations.
// For sqlite the DSN should enable foreign keys (_foreign_keys=on) so that
// deleting a user cascades to its tweets, likes and follow edges.
func Open(driver, dsn string, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Configure GORM logger
	gormLogger := logger.New(
		log, // logrus.Logger satisfies logger.Writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		// sqlite allows a single writer; serialize at the pool.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Tweet{}, &models.Like{}, &models.Follow{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
