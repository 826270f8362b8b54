package repository

import (
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
)

// CenterRepository defines the interface for center data operations
type CenterRepository interface {
	GetActiveCenter() (*models.Center, error)
}

// centerRepository implements CenterRepository
type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository creates a new instance of CenterRepository
func NewCenterRepository(db *gorm.DB) CenterRepository {
	return &centerRepository{
		db: db,
	}
}

// GetActiveCenter retrieves the active coaching center row
func (r *centerRepository) GetActiveCenter() (*models.Center, error) {
	var center models.Center

	err := r.db.Where("active = ?", true).Order("id DESC").First(&center).Error
	if err != nil {
		return nil, err
	}

	return &center, nil
}
