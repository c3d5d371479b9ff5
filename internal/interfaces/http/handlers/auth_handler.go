package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kalasangha.client/internal/config"
	"kalasangha.client/pkg/crypto"
	"kalasangha.client/pkg/jwt"
	"kalasangha.client/pkg/logger"
)

type AuthHandler struct {
	admin      config.AdminConfig
	jwtService *jwt.JWTService
}

func NewAuthHandler(admin config.AdminConfig, jwtService *jwt.JWTService) *AuthHandler {
	// Without an explicit hash the plaintext dev credential is hashed once
	// at startup, so the documented default login works out of the box.
	if admin.PasswordHash == "" {
		if hash, err := crypto.HashPassword(admin.Password); err == nil {
			admin.PasswordHash = hash
		}
	}
	return &AuthHandler{admin: admin, jwtService: jwtService}
}

// Login exchanges admin credentials for a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email and password are required"})
		return
	}

	if input.Email != h.admin.Email || !crypto.CheckPassword(input.Password, h.admin.PasswordHash) {
		logger.Warn(c.Request.Context(), "failed admin login", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
		return
	}

	token, err := h.jwtService.GenerateToken(input.Email, "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
