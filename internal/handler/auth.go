package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login requests
type AuthHandler struct {
	service LoginService
}

// Service interface for dependency injection
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc LoginService) *AuthHandler {
	return &AuthHandler{service: svc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /auth/login requests
//
//	@Summary	Exchange credentials for a bearer token
//	@Param		credentials	body		loginRequest	true	"username and password"
//	@Success	200			{object}	tokenResponse
//	@Failure	401			{object}	map[string]string
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /auth/me requests. The identity is placed on the context by
// the auth middleware.
//
//	@Summary	Return the authenticated identity
//	@Security	BearerAuth
//	@Success	200	{object}	models.Identity
//	@Failure	401	{object}	map[string]string
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, identity)
}
