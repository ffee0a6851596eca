package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/private", middleware.AuthMiddleware("tok"), func(c *gin.Context) {
		id, ok := middleware.GetClientIDFromContext(c)
		assert.True(t, ok)
		assert.NotEmpty(t, id)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"no scheme", "Authorization", "tok", http.StatusUnauthorized},
		{"wrong token", "Authorization", "Bearer nope", http.StatusUnauthorized},
		{"bearer", "Authorization", "Bearer tok", http.StatusOK},
		{"lower-case scheme", "Authorization", "bearer tok", http.StatusOK},
		{"api key", "X-API-Key", "tok", http.StatusOK},
		{"wrong api key", "X-API-Key", "tok2", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			assert.Equal(t, tt.want, serve(r, req).Code)
		})
	}
}

func TestAuthMiddleware_EmptyTokenDisablesCheck(t *testing.T) {
	r := gin.New()
	r.GET("/open", middleware.AuthMiddleware(""), func(c *gin.Context) {
		_, ok := middleware.GetClientIDFromContext(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/open", nil)).Code)
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestNewRateLimiter_Invalid(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/", func(c *gin.Context) {
		assert.NotSame(t, base, middleware.GetLoggerFromCtx(c.Request.Context()))
		assert.Same(t, middleware.GetLoggerFromCtx(c.Request.Context()), middleware.GetLoggerFromContext(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	assert.Equal(t, "req-1", serve(r, req).Header().Get("X-Request-ID"))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestGetLoggerFromCtx_Default(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, middleware.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, middleware.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, middleware.ParseLevel("verbose"))
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "api_v1_budgets_id", middleware.EventName("/api/v1/budgets/:id"))
	assert.Equal(t, "swagger_any", middleware.EventName("/swagger/*any"))
	assert.Equal(t, "", middleware.EventName(""))
}

func TestPosthogMiddleware_DisabledPassesThrough(t *testing.T) {
	client := utils.InitializePosthogClient("", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.False(t, client.IsInitialized())

	r := gin.New()
	r.Use(middleware.PosthogMiddleware(client, "local"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusAccepted) })
	assert.Equal(t, http.StatusAccepted, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
