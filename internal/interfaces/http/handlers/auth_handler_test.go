package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kalasangha.client/internal/config"
	"kalasangha.client/pkg/crypto"
	"kalasangha.client/pkg/jwt"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := crypto.HashPassword("secret")
	require.NoError(t, err)

	handler := NewAuthHandler(config.AdminConfig{
		Email:        "admin@kalasangha.club",
		PasswordHash: hash,
	}, jwt.NewJWTService("test-secret", time.Hour))

	r := gin.New()
	r.POST("/api/auth/login", handler.Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogin(t, r, gin.H{"email": "admin@kalasangha.club", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)

	claims, err := jwt.NewJWTService("test-secret", time.Hour).ValidateToken(body.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@kalasangha.club", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestLogin_DefaultDevCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// No ADMIN_PASSWORD_HASH set: the handler hashes the dev default at
	// construction, so admin@kalasangha.club/admin must log in.
	handler := NewAuthHandler(config.Load().Admin, jwt.NewJWTService("test-secret", time.Hour))
	r := gin.New()
	r.POST("/api/auth/login", handler.Login)

	w := postLogin(t, r, gin.H{"email": "admin@kalasangha.club", "password": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogin(t, r, gin.H{"email": "admin@kalasangha.club", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "invalid credentials", body.Error)
}

func TestLogin_UnknownEmail(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogin(t, r, gin.H{"email": "other@kalasangha.club", "password": "secret"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	r := newAuthTestRouter(t)

	w := postLogin(t, r, gin.H{"email": "admin@kalasangha.club"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
