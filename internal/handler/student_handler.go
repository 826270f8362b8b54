package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TrendySloth1001/tutorix-sub002/internal/service"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/logger"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

// StudentHandler handles student-related HTTP requests
type StudentHandler struct {
	studentService service.StudentService
	logger         *logger.Logger
}

// NewStudentHandler creates a new StudentHandler instance
func NewStudentHandler(studentService service.StudentService, logger *logger.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger,
	}
}

// GetStudent retrieves one student by ID
// @Summary Get student
// @Description Get a student by ID, including the guardian name when linked
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} utils.APIResponse{data=response.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid student ID"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Router /api/v1/students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.logger.WithError(err).Error("Invalid student ID param")
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	student, err := h.studentService.GetStudent(id)
	if err != nil {
		h.logger.WithError(err).WithField("student_id", id).Error("Failed to get student")
		utils.NotFoundResponse(c, "Student not found")
		return
	}

	utils.SuccessResponse(c, "Student retrieved successfully", student)
}

// GetWards retrieves the active students linked to a guardian
// @Summary Get wards
// @Description Get the active students whose guardian is the given student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Guardian student ID"
// @Success 200 {object} utils.APIResponse{data=[]response.StudentResponse} "Wards retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid student ID"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/students/{id}/wards [get]
func (h *StudentHandler) GetWards(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.logger.WithError(err).Error("Invalid student ID param")
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	wards, err := h.studentService.GetWards(id)
	if err != nil {
		h.logger.WithError(err).WithField("guardian_id", id).Error("Failed to get wards")
		utils.InternalServerErrorResponse(c, "Failed to retrieve wards", err)
		return
	}

	utils.SuccessResponse(c, "Wards retrieved successfully", wards)
}

// SearchStudents retrieves students matching a search query
// @Summary Search students
// @Description Search students by name or email with pagination
// @Tags students
// @Accept json
// @Produce json
// @Param search query string false "Search by name or email"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]response.StudentResponse} "Students retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/students [get]
func (h *StudentHandler) SearchStudents(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)
	query := c.Query("search")

	students, total, err := h.studentService.SearchStudents(query, page, limit)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to search students")
		utils.InternalServerErrorResponse(c, "Failed to search students", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Students retrieved successfully", students, page, limit, total)
}
