package auth

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/jwt"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	require.NoError(t, (&AuthRegistrar{}).Register(engine, cfg))
	return engine
}

func login(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginWithPlainPassword(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Agent.Auth.Pass = "s3cret"
	cfg.API.Auth.JWTSecret = "jwt-secret"
	engine := newEngine(t, cfg)

	w := login(engine, `{"username": "admin", "password": "s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := jwt.ValidateToken(body.Token, "jwt-secret")
	require.NoError(t, err)
	assert.True(t, claims.Has("SETTINGS"))

	assert.Equal(t, http.StatusUnauthorized, login(engine, `{"username": "admin", "password": "wrong"}`).Code)
	assert.Equal(t, http.StatusBadRequest, login(engine, `nope`).Code)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.GetDefaultConfig()
	cfg.Agent.Auth.Pass = "ignored-when-hash-set"
	cfg.Agent.Auth.PassHash = string(hash)
	cfg.API.Auth.JWTSecret = "jwt-secret"
	engine := newEngine(t, cfg)

	assert.Equal(t, http.StatusOK, login(engine, `{"username": "admin", "password": "hashed"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, login(engine, `{"username": "admin", "password": "ignored-when-hash-set"}`).Code)
}

func TestEmptyPasswordNeverMatches(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.API.Auth.JWTSecret = "jwt-secret"
	engine := newEngine(t, cfg)

	assert.Equal(t, http.StatusUnauthorized, login(engine, `{"username": "admin", "password": ""}`).Code)
}
