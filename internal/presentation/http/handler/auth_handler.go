package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/request"
	"github.com/pospoint/terminal-api/internal/presentation/http/dto/response"
)

// AuthHandler handles operator authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login signs an operator into the terminal
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Login successful"
	if result.Offline {
		message = "Login successful (offline)"
	}
	response.OK(c, message, result)
}
