package handlers

import (
	"errors"
	"net/http"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	liveService *services.LiveService
}

func NewLiveHandler(liveService *services.LiveService) *LiveHandler {
	return &LiveHandler{liveService: liveService}
}

// GetState returns the derived monitor view. A missing round is the valid
// "no active session" answer, not an error.
func (h *LiveHandler) GetState(c *gin.Context) {
	state, err := h.liveService.GetState(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Lock freezes the player's selected answer for scoring.
func (h *LiveHandler) Lock(c *gin.Context) {
	state, err := h.liveService.Lock(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrLockUnavailable), errors.Is(err, services.ErrAlreadyLocked):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, state)
}

type PlayerStateRequest struct {
	Phase        string `json:"phase"`
	ActivePlayer string `json:"activePlayer"`
	Group        string `json:"group"`
	Timer        int    `json:"timer"`
	Question     struct {
		Text        string `json:"text"`
		AnswerIndex int    `json:"answerIndex"`
	} `json:"question"`
	Options     []string `json:"options"`
	Selected    int      `json:"selected"`
	UserLocked  bool     `json:"userLocked"`
	AdminLocked bool     `json:"adminLocked"`
}

// UpdateState is the player app's write path: the round document is replaced
// wholesale and every subscribed admin view is notified.
func (h *LiveHandler) UpdateState(c *gin.Context) {
	var req PlayerStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session := models.LiveSession{
		ID:           c.Param("id"),
		Phase:        req.Phase,
		ActivePlayer: req.ActivePlayer,
		GroupName:    req.Group,
		Timer:        req.Timer,
		QuestionText: req.Question.Text,
		AnswerIndex:  req.Question.AnswerIndex,
		Options:      req.Options,
		Selected:     req.Selected,
		UserLocked:   req.UserLocked,
		AdminLocked:  req.AdminLocked,
	}

	state, err := h.liveService.UpdateState(c.Request.Context(), &session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// EndSession removes the round document; admin views fall back to
// "no active session".
func (h *LiveHandler) EndSession(c *gin.Context) {
	if err := h.liveService.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "session ended"})
}
