package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/config"
	"github.com/Lixetron/job-portal/internal/logger"
	"github.com/Lixetron/job-portal/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (or reuses) the GORM connection from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.ApplicantProfile{},
		&models.RecruiterProfile{},
		&models.Job{},
		&models.Application{},
		&models.Rating{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
