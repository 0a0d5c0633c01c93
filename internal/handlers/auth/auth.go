package auth

import (
	"net/http"

	"catalog-service/internal/pkg/response"
	service "catalog-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken exchanges admin credentials for a bearer token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "email and password are required", err)
		return
	}

	signed, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	response.Success(c, http.StatusOK, "token issued", gin.H{
		"token":      signed,
		"expires_in": h.authService.TokenTTLSeconds(),
	})
}
