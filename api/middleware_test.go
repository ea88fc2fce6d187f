package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts one route behind the middleware under test and records
// the actor the handler saw.
func newTestRouter(tokens TokenParser, seen *audit.Actor, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/v1", Authenticate(tokens))
	handlers := append(guards, func(c *gin.Context) {
		if actor, found := audit.ActorFrom(c.Request.Context()); found {
			*seen = actor
		}
		ok(c, nil)
	})
	group.GET("/whoami", handlers...)
	return router
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "ops@example.com"}}
}

func TestAuthenticate_Anonymous(t *testing.T) {
	var seen audit.Actor
	router := newTestRouter(&MockAuthUseCase{}, &seen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, seen.Email)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := &MockAuthUseCase{}
	tokens.On("ParseToken", "good").Return(adminClaims(), nil)
	var seen audit.Actor
	router := newTestRouter(tokens, &seen)

	req := httptest.NewRequest("GET", "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, audit.Actor{ID: 1, Email: "ops@example.com", Role: "ADMIN"}, seen)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := &MockAuthUseCase{}
	tokens.On("ParseToken", "forged").Return(nil, domain.ErrUnauthorized)
	var seen audit.Actor
	router := newTestRouter(tokens, &seen)

	req := httptest.NewRequest("GET", "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	var seen audit.Actor
	router := newTestRouter(&MockAuthUseCase{}, &seen)

	req := httptest.NewRequest("GET", "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	userClaims := adminClaims()
	userClaims.Role = domain.RoleUser

	tokens := &MockAuthUseCase{}
	tokens.On("ParseToken", "admin").Return(adminClaims(), nil)
	tokens.On("ParseToken", "user").Return(userClaims, nil)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "anonymous", header: "", want: http.StatusUnauthorized},
		{name: "user role", header: "Bearer user", want: http.StatusForbidden},
		{name: "admin role", header: "Bearer admin", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen audit.Actor
			router := newTestRouter(tokens, &seen, RequireAdmin())

			req := httptest.NewRequest("GET", "/api/v1/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)

	router := gin.New()
	router.Use(RequestLogger(logger.NewNop()), Metrics(m))
	router.GET("/whoami", func(c *gin.Context) { ok(c, nil) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_http_requests_total")
}
