package handlers

import (
	"errors"
	"net/http"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type PlayerMessageRequest struct {
	Text   string `json:"text" binding:"required"`
	Sender string `json:"sender" binding:"required"`
}

// ListMessages returns the session's history in creation order.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Send appends an admin message. The sender label is the signed-in
// identity's display name, falling back to its email.
func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sender := "admin"
	if identity := identityFromContext(c); identity != nil {
		if identity.DisplayName != "" {
			sender = identity.DisplayName
		} else {
			sender = identity.Email
		}
	}

	view, err := h.chatService.Send(c.Request.Context(), c.Param("id"), sender, models.SenderRoleAdmin, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// PlayerSend appends a message on behalf of the player app.
func (h *ChatHandler) PlayerSend(c *gin.Context) {
	var req PlayerMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.chatService.Send(c.Request.Context(), c.Param("id"), req.Sender, "player", req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}
