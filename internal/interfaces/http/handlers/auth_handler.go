package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type AuthHandler struct {
	service *usecases.AuthService
}

func NewAuthHandler(service *usecases.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a dashboard account. Admin only.
// POST /api/v1/admin/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input usecases.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("email and password are required"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// Login issues a token pair for valid credentials.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input usecases.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("email and password are required"))
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user":         user,
	})
}

// Refresh exchanges a refresh token for a fresh pair.
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("refreshToken is required"))
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, pair)
}
