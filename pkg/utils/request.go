package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// GetPaginationParams reads page and limit query parameters with sane
// defaults. Limit is capped at 100.
func GetPaginationParams(c *gin.Context) (int, int) {
	page := defaultPage
	limit := defaultLimit

	if v, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage))); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// GetIDParam parses the id path parameter as an unsigned integer.
func GetIDParam(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter %q: %w", idStr, err)
	}
	return uint(id), nil
}
