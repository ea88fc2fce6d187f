package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	dateLayout      = "2006-01-02"
)

// pageRequest reads pageNum and pageSize. Pages are zero-based.
func pageRequest(c *gin.Context) (domain.PageRequest, error) {
	page, err := intQuery(c, "pageNum", 0)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := intQuery(c, "pageSize", defaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.NewPageRequest(page, size)
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, key)
	}
	return v, nil
}

// requiredID reads a positive id from the query string.
func requiredID(c *gin.Context, key string) (int64, error) {
	return parseID(key, c.Query(key))
}

func pathID(c *gin.Context) (int64, error) {
	return parseID("id", c.Param("id"))
}

func parseID(key, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrValidation, key)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, key)
	}
	return id, nil
}

func optionalBool(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrValidation, key)
	}
	return &v, nil
}

// timeBound reads an RFC 3339 instant or a plain date. A plain date used as an
// upper bound covers the whole day.
func timeBound(c *gin.Context, key string, upper bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date (%s) or an RFC 3339 time", domain.ErrValidation, key, dateLayout)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %s", domain.ErrValidation, err)
	}
	return nil
}
