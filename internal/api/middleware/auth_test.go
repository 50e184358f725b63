package middleware

import (
	"OctoUptime/internal/pkg/jwt"
	"OctoUptime/internal/pkg/permission"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddleware(secret))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/api/plugin/uptime", func(c *gin.Context) {
		if permission.Check(permission.ClaimsChecker{}, c, permission.System) {
			c.String(http.StatusOK, c.GetString("username"))
			return
		}
		c.Status(http.StatusForbidden)
	})
	return engine
}

func do(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestExcludedPathsSkipAuth(t *testing.T) {
	w := do(newEngine(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingOrMalformedToken(t *testing.T) {
	engine := newEngine()

	w := do(engine, httptest.NewRequest(http.MethodGet, "/api/plugin/uptime", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/plugin/uptime", nil)
	req.Header.Set("Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, do(engine, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/plugin/uptime", nil)
	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, http.StatusUnauthorized, do(engine, req).Code)
}

func TestValidTokenSetsClaims(t *testing.T) {
	token, err := jwt.GenerateToken("admin", []string{"SYSTEM"}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/plugin/uptime", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := do(newEngine(), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	token, err = jwt.GenerateToken("viewer", nil, secret, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/plugin/uptime", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, do(newEngine(), req).Code)
}

func TestWebSocketTokenFromQuery(t *testing.T) {
	token, err := jwt.GenerateToken("admin", []string{"SYSTEM"}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/plugin/uptime?token="+token, nil)
	req.Header.Set("Upgrade", "websocket")
	assert.Equal(t, http.StatusOK, do(newEngine(), req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/plugin/uptime?token="+token, nil)
	assert.Equal(t, http.StatusUnauthorized, do(newEngine(), req).Code, "query tokens only count for upgrades")
}
