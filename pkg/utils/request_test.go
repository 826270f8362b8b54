package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationFromQuery(query string) (int, int) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit_values", query: "page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "caps_limit", query: "limit=1000", wantPage: 1, wantLimit: 100},
		{name: "ignores_non_positive", query: "page=-1&limit=0", wantPage: 1, wantLimit: 10},
		{name: "ignores_garbage", query: "page=x&limit=y", wantPage: 1, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := paginationFromQuery(tt.query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestGetIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses_numeric_id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, err := GetIDParam(c)

		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("rejects_non_numeric_id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		_, err := GetIDParam(c)

		require.Error(t, err)
	})
}

func TestPaginatedSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	PaginatedSuccessResponse(c, "ok", []string{"a"}, 2, 10, 57)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, int64(57), resp.Meta.Total)
	assert.Equal(t, 6, resp.Meta.TotalPages, "57 rows over pages of 10")
}
