package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/meatkonnex/backend/internal/application/identity"
	"github.com/meatkonnex/backend/internal/domain/shared"
	"github.com/meatkonnex/backend/internal/interfaces/http/dto"
	"github.com/meatkonnex/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest carries the admin credentials as JSON or form fields
// @Description Admin credentials
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=100" example:"admin"`
	Password string `json:"password" form:"password" binding:"required,max=128" example:"change-me"`
}

// TokenResponse is the OAuth2-style access token answer
// @Description Bearer access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"900"`
}

// Login godoc
// @ID           login
// @Summary      Admin login
// @Description  Accepts application/json or form-encoded username and password
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} APIResponse[TokenResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Logout godoc
// @ID           logout
// @Summary      Revoke the presented token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      401 {object} ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), identity.LogoutInput{
		Subject:   principal.Subject,
		TokenJTI:  principal.TokenJTI,
		ExpiresAt: principal.ExpiresAt,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.MessageResponse{Message: "Logged out"})
}
