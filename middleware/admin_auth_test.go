package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mazingira-mind-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T, adminKey string) *gin.Engine {
	t.Setenv("ADMIN_API_KEY", adminKey)
	require.NoError(t, config.Load())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/stats", RequireAdminKey(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAdminKey_ValidKey(t *testing.T) {
	router := newGuardedRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-Admin-Key", "secret")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdminKey_WrongKey(t *testing.T) {
	router := newGuardedRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-Admin-Key", "guess")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminKey_MissingKeyHeader(t *testing.T) {
	router := newGuardedRouter(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminKey_UnconfiguredStaysClosed(t *testing.T) {
	router := newGuardedRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("X-Admin-Key", "anything")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
