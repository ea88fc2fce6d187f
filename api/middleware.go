package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airops/internal/audit"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// Authenticate resolves an optional bearer token into the request's audit
// actor. Requests without a token pass through anonymously; a token that
// does not verify is rejected.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			fail(c, fmt.Errorf("%w: expected a bearer token", domain.ErrUnauthorized))
			return
		}
		claims, err := tokens.ParseToken(raw)
		if err != nil {
			fail(c, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized))
			return
		}
		actor := audit.Actor{ID: claims.UserID, Email: claims.Subject, Role: string(claims.Role)}
		c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, found := audit.ActorFrom(c.Request.Context())
		if !found {
			fail(c, fmt.Errorf("%w: sign in required", domain.ErrUnauthorized))
			return
		}
		if actor.Role != string(domain.RoleAdmin) {
			fail(c, fmt.Errorf("%w: admin role required", domain.ErrForbidden))
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request and any error a handler attached.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if actor, ok := audit.ActorFrom(c.Request.Context()); ok {
			fields = append(fields, "actor", actor.Email)
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(fields, "error", c.Errors.String())...)
			return
		}
		log.Info("request served", fields...)
	}
}

func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
