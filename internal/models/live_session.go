package models

import "time"

// LiveSession is the single document describing the quiz round in progress.
// It is owned and written by the player-facing app; the admin side reads it
// continuously and may set exactly one field, AdminLocked.
type LiveSession struct {
	ID           string    `gorm:"primaryKey;size:128" json:"id"`
	Phase        string    `gorm:"size:32" json:"phase"`
	ActivePlayer string    `gorm:"size:255" json:"activePlayer"`
	GroupName    string    `gorm:"column:group_name;size:255" json:"group"`
	Timer        int       `json:"timer"`
	QuestionText string    `gorm:"type:text" json:"questionText"`
	AnswerIndex  int       `json:"answerIndex"`
	Options      []string  `gorm:"serializer:json" json:"options"`
	Selected     int       `json:"selected"`
	UserLocked   bool      `json:"userLocked"`
	AdminLocked  bool      `json:"adminLocked"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (LiveSession) TableName() string {
	return "live_sessions"
}
