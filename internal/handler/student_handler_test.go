package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrendySloth1001/tutorix-sub002/internal/models/response"
	"github.com/TrendySloth1001/tutorix-sub002/pkg/utils"
)

type stubStudentService struct {
	student    *response.StudentResponse
	studentErr error

	wards    []*response.StudentResponse
	wardsErr error

	results   []*response.StudentResponse
	total     int64
	searchErr error
	gotQuery  string
	gotPage   int
	gotLimit  int
}

func (s *stubStudentService) GetStudent(id uint) (*response.StudentResponse, error) {
	if s.studentErr != nil {
		return nil, s.studentErr
	}
	return s.student, nil
}

func (s *stubStudentService) GetWards(guardianID uint) ([]*response.StudentResponse, error) {
	if s.wardsErr != nil {
		return nil, s.wardsErr
	}
	return s.wards, nil
}

func (s *stubStudentService) SearchStudents(query string, page, limit int) ([]*response.StudentResponse, int64, error) {
	s.gotQuery, s.gotPage, s.gotLimit = query, page, limit
	if s.searchErr != nil {
		return nil, 0, s.searchErr
	}
	return s.results, s.total, nil
}

func newStudentRouter(svc *stubStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewStudentHandler(svc, testLogger)

	students := router.Group("/api/v1/students")
	{
		students.GET("", h.SearchStudents)
		students.GET("/:id", h.GetStudent)
		students.GET("/:id/wards", h.GetWards)
	}
	return router
}

func TestGetStudentHandler(t *testing.T) {
	t.Run("returns_the_student", func(t *testing.T) {
		guardianName := "Rohit Sharma"
		svc := &stubStudentService{student: &response.StudentResponse{
			ID:           7,
			Name:         "Diya Sharma",
			GuardianName: &guardianName,
			Active:       true,
		}}
		router := newStudentRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/students/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Diya Sharma", data["name"])
		assert.Equal(t, "Rohit Sharma", data["guardian_name"])
	})

	t.Run("unknown_student_is_not_found", func(t *testing.T) {
		svc := &stubStudentService{studentErr: assert.AnError}
		router := newStudentRouter(svc)

		w := performRequest(router, http.MethodGet, "/api/v1/students/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects_non_numeric_id", func(t *testing.T) {
		router := newStudentRouter(&stubStudentService{})

		w := performRequest(router, http.MethodGet, "/api/v1/students/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetWardsHandler(t *testing.T) {
	svc := &stubStudentService{wards: []*response.StudentResponse{
		{ID: 7, Name: "Diya Sharma", Active: true},
	}}
	router := newStudentRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/students/42/wards", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	wards, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, wards, 1)
}

func TestSearchStudentsHandler(t *testing.T) {
	svc := &stubStudentService{
		results: []*response.StudentResponse{{ID: 42, Name: "Aarav Sharma", Active: true}},
		total:   1,
	}
	router := newStudentRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/v1/students?search=aarav&page=1&limit=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aarav", svc.gotQuery)
	assert.Equal(t, 1, svc.gotPage)
	assert.Equal(t, 20, svc.gotLimit)

	var envelope utils.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Meta.Total)
}
