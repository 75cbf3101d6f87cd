package handlers

import (
	"errors"
	"net/http"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// ListUsers returns the whole login collection in one batch.
func (h *RosterHandler) ListUsers(c *gin.Context) {
	users, err := h.rosterService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SaveFlags persists the six toggles for one row. Failures are scoped to
// the row: the client keeps its optimistic state and may retry.
func (h *RosterHandler) SaveFlags(c *gin.Context) {
	id := c.Param("id")

	var flags models.UserFlags
	if err := c.ShouldBindJSON(&flags); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.rosterService.SaveFlags(c.Request.Context(), id, flags)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}
