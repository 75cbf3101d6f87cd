package handlers

import (
	"quiz-admin-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// identityFromContext returns the identity resolved by the AdminAuth
// middleware, or nil outside an admin-gated route.
func identityFromContext(c *gin.Context) *models.Identity {
	v, ok := c.Get("identity")
	if !ok {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}
