package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/firm_books/internal/middleware"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBookEvent(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		route     string
		wantEvent string
		wantProps map[string]any
		wantOK    bool
	}{
		{"journal created", http.MethodPost, "/api/v1/journals", "journal_created", map[string]any{}, true},
		{"report", http.MethodGet, "/api/v1/reports/trial-balance", "report_viewed", map[string]any{"report": "trial-balance"}, true},
		{"inventory delete", http.MethodDelete, "/api/v1/inventory/:itemID", "inventory_item_deleted", map[string]any{}, true},
		{"journal list untracked", http.MethodGet, "/api/v1/journals", "", map[string]any{}, false},
		{"health untracked", http.MethodGet, "/health", "", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, props, ok := middleware.BookEvent(tt.method, tt.route)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEvent, event)
			assert.Equal(t, tt.wantProps, props)
		})
	}
}

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(middleware.PosthogMiddleware(&utils.PosthogClientWrapper{}))
	r.POST("/api/v1/journals", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/journals", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(nil))
	var hasLogger bool
	r.GET("/ping", func(c *gin.Context) {
		hasLogger = middleware.GetLoggerFromCtx(c.Request.Context()) != nil
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.True(t, hasLogger)
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "middleware-secret"
	valid, err := utils.GenerateJWT("user-7", secret, time.Hour, "firm-books")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(secret))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserIDOrSystem(c))
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "user-7"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage", "Bearer abc", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
