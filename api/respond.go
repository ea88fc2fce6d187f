package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airops/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess         = "SUCCESS"
	statusNotFound        = "NOT_FOUND"
	statusBadRequest      = "BAD_REQUEST"
	statusConflict        = "CONFLICT"
	statusUnauthorized    = "UNAUTHORIZED"
	statusTooManyRequests = "TOO_MANY_REQUESTS"
	statusError           = "ERROR"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Total   *int        `json:"total,omitempty"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: statusSuccess, Data: data})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: statusSuccess, Data: data})
}

// okList answers an empty result with NOT_FOUND, as clients of this API expect.
func okList[T any](c *gin.Context, items []T) {
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, Response{Status: statusNotFound, Message: "no records found"})
		return
	}
	total := len(items)
	c.JSON(http.StatusOK, Response{Status: statusSuccess, Data: items, Total: &total})
}

// partial answers a best-effort operation. Any failed item turns the code
// into 207 while the body still carries the full outcome.
func partial(c *gin.Context, data interface{}, failed bool) {
	code := http.StatusOK
	if failed {
		code = http.StatusMultiStatus
	}
	c.JSON(code, Response{Status: statusSuccess, Data: data})
}

// fail maps a service error to the envelope. Unknown errors are attached to
// the gin context for the request logger and hidden from the caller.
func fail(c *gin.Context, err error) {
	code, status, message := classify(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, Response{Status: status, Message: message})
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, statusNotFound, err.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, statusBadRequest, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, statusConflict, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, statusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, statusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrTooManyRequests):
		return http.StatusTooManyRequests, statusTooManyRequests, err.Error()
	default:
		return http.StatusInternalServerError, statusError, "internal error"
	}
}
