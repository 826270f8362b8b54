package service

import (
	"fmt"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models"
	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/internal/repository"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
)

// StudentService defines the interface for student operations
type StudentService interface {
	GetStudent(id uint) (*response.StudentResponse, error)
	GetWards(guardianID uint) ([]*response.StudentResponse, error)
	SearchStudents(query string, page, limit int) ([]*response.StudentResponse, int64, error)
}

// studentService implements StudentService
type studentService struct {
	studentRepo repository.StudentRepository
	logger      *logger.Logger
}

// NewStudentService creates a new instance of StudentService
func NewStudentService(studentRepo repository.StudentRepository, logger *logger.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetStudent returns one student by ID
func (s *studentService) GetStudent(id uint) (*response.StudentResponse, error) {
	student, err := s.studentRepo.GetStudentByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", id).Error("Failed to get student")
		return nil, fmt.Errorf("student not found: %w", err)
	}

	resp := toStudentResponse(student)
	if student.GuardianID != nil {
		if guardian, err := s.studentRepo.GetStudentByID(*student.GuardianID); err == nil {
			resp.GuardianName = &guardian.Name
		}
	}

	return resp, nil
}

// GetWards returns the active students linked to a guardian
func (s *studentService) GetWards(guardianID uint) ([]*response.StudentResponse, error) {
	wards, err := s.studentRepo.GetWards(guardianID)
	if err != nil {
		s.logger.WithError(err).WithField("guardian_id", guardianID).Error("Failed to get wards")
		return nil, fmt.Errorf("failed to get wards: %w", err)
	}

	result := make([]*response.StudentResponse, 0, len(wards))
	for _, ward := range wards {
		result = append(result, toStudentResponse(ward))
	}

	return result, nil
}

// SearchStudents returns students whose name or email matches the query
func (s *studentService) SearchStudents(query string, page, limit int) ([]*response.StudentResponse, int64, error) {
	students, total, err := s.studentRepo.SearchStudents(query, page, limit)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("Failed to search students")
		return nil, 0, fmt.Errorf("failed to search students: %w", err)
	}

	result := make([]*response.StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, toStudentResponse(student))
	}

	return result, total, nil
}

func toStudentResponse(student *models.Student) *response.StudentResponse {
	active := true
	if student.Active != nil {
		active = *student.Active
	}

	return &response.StudentResponse{
		ID:         student.ID,
		Name:       student.Name,
		Email:      student.Email,
		Phone:      student.Phone,
		GuardianID: student.GuardianID,
		Active:     active,
	}
}
