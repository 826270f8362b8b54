package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/config"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
)

// Database wraps the GORM connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new instance of Database connected to PostgreSQL
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates and updates the fee module tables
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Center{},
		&models.Student{},
		&models.FeeRecord{},
		&models.PaymentOrder{},
		&models.PaymentOrderItem{},
		&models.FeePayment{},
		&models.SchedulerLog{},
	)
}

// Close closes the underlying database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
