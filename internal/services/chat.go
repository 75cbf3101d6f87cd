package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyMessage = errors.New("message is empty")

type ChatService struct {
	db     *gorm.DB
	events realtime.Bus
}

func NewChatService(db *gorm.DB, events realtime.Bus) *ChatService {
	return &ChatService{db: db, events: events}
}

func chatTopic(sessionID string) string {
	return "chat:" + sessionID
}

// ChatMessageView is a rendered message: raw fields plus the local
// hour:minute clock the panel shows next to each bubble.
type ChatMessageView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Sender     string `json:"sender"`
	SenderRole string `json:"senderRole"`
	CreatedAt  string `json:"createdAt"`
	Clock      string `json:"clock"`
}

// ListMessages returns the full history for a session in creation order.
func (s *ChatService) ListMessages(ctx context.Context, sessionID string) ([]ChatMessageView, error) {
	var messages []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	views := make([]ChatMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, renderMessage(&m))
	}
	return views, nil
}

// Send appends one message. Input is trimmed; an empty result is rejected
// before anything is written.
func (s *ChatService) Send(ctx context.Context, sessionID, sender, role, text string) (*ChatMessageView, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Text:       trimmed,
		Sender:     sender,
		SenderRole: role,
		CreatedAt:  models.NewFlexTime(time.Now()),
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	view := renderMessage(&msg)
	// delivery is best-effort; the append already succeeded
	_ = s.events.Publish(ctx, realtime.Event{
		Topic: chatTopic(sessionID),
		Type:  "message",
		Data:  view,
	})
	return &view, nil
}

func renderMessage(m *models.ChatMessage) ChatMessageView {
	return ChatMessageView{
		ID:         m.ID,
		Text:       m.Text,
		Sender:     m.Sender,
		SenderRole: m.SenderRole,
		CreatedAt:  m.CreatedAt.Time.Format(time.RFC3339Nano),
		Clock:      m.CreatedAt.Clock(),
	}
}
