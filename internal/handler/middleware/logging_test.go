//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"bookit/internal/handler/middleware"
	"bookit/internal/pkg/config"
	"bookit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/api/bookings/:id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/bookings/7", nil,
			map[string]string{"X-Request-ID": id})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/api/bookings/7", nil,
			map[string]string{"X-Request-ID": "not-a-uuid"})

		got := rec.Header().Get("X-Request-ID")
		assert.NotEqual(t, "not-a-uuid", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		assert.Equal(t, got, rec.Body.String())
	})
}
