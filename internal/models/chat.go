package models

// ChatMessage is one entry of the append-only chat under a live session.
// Messages are never edited or deleted; ordering is by CreatedAt ascending.
type ChatMessage struct {
	ID         string   `gorm:"primaryKey;size:64" json:"id"`
	SessionID  string   `gorm:"size:128;index;not null" json:"session_id"`
	Text       string   `gorm:"type:text;not null" json:"text"`
	Sender     string   `gorm:"size:255" json:"sender"`
	SenderRole string   `gorm:"size:32" json:"senderRole"`
	CreatedAt  FlexTime `gorm:"index" json:"createdAt"`
}

func (ChatMessage) TableName() string {
	return "live_chat_messages"
}

const SenderRoleAdmin = "admin"
