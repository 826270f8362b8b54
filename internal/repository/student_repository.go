package repository

import (
	"gorm.io/gorm"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
)

// StudentRepository defines the interface for student data operations
type StudentRepository interface {
	GetStudentByID(id uint) (*models.Student, error)
	GetWards(guardianID uint) ([]*models.Student, error)
	GetStudentsByIDs(ids []uint) ([]*models.Student, error)
	SearchStudents(search string, page, limit int) ([]*models.Student, int64, error)
}

// studentRepository implements StudentRepository
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new instance of StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// GetStudentByID retrieves a student by ID
func (r *studentRepository) GetStudentByID(id uint) (*models.Student, error) {
	var student models.Student

	err := r.db.Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// GetWards retrieves the active students linked to a guardian
func (r *studentRepository) GetWards(guardianID uint) ([]*models.Student, error) {
	var wards []*models.Student

	err := r.db.Where("guardian_id = ? AND active = ?", guardianID, true).
		Order("id ASC").
		Find(&wards).Error
	if err != nil {
		return nil, err
	}

	return wards, nil
}

// GetStudentsByIDs retrieves students matching the given IDs
func (r *studentRepository) GetStudentsByIDs(ids []uint) ([]*models.Student, error) {
	var students []*models.Student

	err := r.db.Where("id IN ?", ids).Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

// SearchStudents retrieves active students with pagination and optional
// search by name or email
func (r *studentRepository) SearchStudents(search string, page, limit int) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Student{}).Where("active = ?", true)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("name ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
