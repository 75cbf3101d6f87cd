package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService    *services.AuthService
	resolveTimeout time.Duration
}

func NewAuthHandler(authService *services.AuthService, resolveTimeout time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, resolveTimeout: resolveTimeout}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@gmail.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type IdentityResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type SessionResponse struct {
	Token string             `json:"token,omitempty"`
	User  IdentityResponse   `json:"user"`
	Admin *models.UserRecord `json:"admin"`
}

// Login signs the caller in and gates the session on the admin check. The
// error body carries the provider message as-is; no subtype is exposed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	identity, token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}

	record, err := h.authService.Authorize(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, services.ErrAdminOnly) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User: IdentityResponse{
			UID:         identity.UID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
		},
		Admin: record,
	})
}

// Me re-resolves the current identity with a bounded wait so a slow store
// degrades to "signed out" instead of hanging the panel.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString("uid")

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.resolveTimeout)
	defer cancel()

	identity, err := h.authService.Resolve(ctx, uid)
	if err != nil {
		// timeouts and missing identities both read as signed out
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not signed in"})
		return
	}

	record, err := h.authService.Authorize(ctx, identity)
	if err != nil {
		if errors.Is(err, services.ErrAdminOnly) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		User: IdentityResponse{
			UID:         identity.UID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
		},
		Admin: record,
	})
}

// Logout acknowledges sign-out; the token is stateless and simply discarded
// by the client.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "signed out"})
}
