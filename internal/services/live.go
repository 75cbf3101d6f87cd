package services

import (
	"context"
	"errors"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/realtime"

	"gorm.io/gorm"
)

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrLockUnavailable = errors.New("answer is not locked by the player yet")
	ErrAlreadyLocked   = errors.New("answer already locked")
)

// Option highlight states as the admin view renders them.
const (
	HighlightNone    = ""
	HighlightPending = "pending"
	HighlightCorrect = "correct"
	HighlightWrong   = "wrong"
)

type OptionView struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Hidden    bool   `json:"hidden"`
	Highlight string `json:"highlight"`
}

type QuestionView struct {
	Text        string `json:"text"`
	AnswerIndex int    `json:"answerIndex"`
}

// MonitorState is the derived admin view of one round. Active=false is the
// valid "no active session" state, not an error.
type MonitorState struct {
	Active       bool         `json:"active"`
	SessionID    string       `json:"session_id"`
	Phase        string       `json:"phase,omitempty"`
	ActivePlayer string       `json:"activePlayer,omitempty"`
	Group        string       `json:"group,omitempty"`
	Timer        int          `json:"timer,omitempty"`
	Question     QuestionView `json:"question"`
	Options      []OptionView `json:"options"`
	Selected     int          `json:"selected"`
	UserLocked   bool         `json:"userLocked"`
	AdminLocked  bool         `json:"adminLocked"`
	CanLock      bool         `json:"canLock"`
}

type LiveService struct {
	db     *gorm.DB
	events realtime.Bus
}

func NewLiveService(db *gorm.DB, events realtime.Bus) *LiveService {
	return &LiveService{db: db, events: events}
}

func liveTopic(sessionID string) string {
	return "live:" + sessionID
}

// GetState reads the round document and derives the monitor view.
func (s *LiveService) GetState(ctx context.Context, sessionID string) (*MonitorState, error) {
	var session models.LiveSession
	err := s.db.WithContext(ctx).First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &MonitorState{Active: false, SessionID: sessionID, Selected: -1}, nil
	}
	if err != nil {
		return nil, err
	}
	return DeriveMonitorState(&session), nil
}

// DeriveMonitorState maps the raw round document to what the admin sees:
// the selected option is pending until the admin lock, then judged against
// the designated answer; blanked-out options stay in the layout but hidden.
func DeriveMonitorState(session *models.LiveSession) *MonitorState {
	state := &MonitorState{
		Active:       true,
		SessionID:    session.ID,
		Phase:        session.Phase,
		ActivePlayer: session.ActivePlayer,
		Group:        session.GroupName,
		Timer:        session.Timer,
		Question: QuestionView{
			Text:        session.QuestionText,
			AnswerIndex: session.AnswerIndex,
		},
		Selected:    session.Selected,
		UserLocked:  session.UserLocked,
		AdminLocked: session.AdminLocked,
		CanLock:     session.UserLocked && !session.AdminLocked,
	}

	state.Options = make([]OptionView, 0, len(session.Options))
	for i, text := range session.Options {
		opt := OptionView{
			Index:     i,
			Text:      text,
			Hidden:    text == "",
			Highlight: HighlightNone,
		}
		if i == session.Selected {
			switch {
			case !session.AdminLocked:
				opt.Highlight = HighlightPending
			case session.Selected == session.AnswerIndex:
				opt.Highlight = HighlightCorrect
			default:
				opt.Highlight = HighlightWrong
			}
		}
		state.Options = append(state.Options, opt)
	}
	return state
}

// Lock freezes the player's selected answer for scoring. Valid only while
// the player has locked and the admin has not: a one-way transition that
// updates the adminLocked field and nothing else.
func (s *LiveService) Lock(ctx context.Context, sessionID string) (*MonitorState, error) {
	db := s.db.WithContext(ctx)

	var session models.LiveSession
	err := db.First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, err
	}

	if session.AdminLocked {
		return nil, ErrAlreadyLocked
	}
	if !session.UserLocked {
		return nil, ErrLockUnavailable
	}

	if err := db.Model(&models.LiveSession{}).
		Where("id = ?", sessionID).
		Update("admin_locked", true).Error; err != nil {
		return nil, err
	}

	session.AdminLocked = true
	state := DeriveMonitorState(&session)
	s.publish(ctx, sessionID, "state", state)
	return state, nil
}

// UpdateState is the player app's write path: it replaces the round document
// and notifies every subscribed admin.
func (s *LiveService) UpdateState(ctx context.Context, session *models.LiveSession) (*MonitorState, error) {
	db := s.db.WithContext(ctx)

	if err := db.Save(session).Error; err != nil {
		return nil, err
	}

	state := DeriveMonitorState(session)
	s.publish(ctx, session.ID, "state", state)
	return state, nil
}

// EndSession removes the round document; the admin view falls back to
// "no active session".
func (s *LiveService) EndSession(ctx context.Context, sessionID string) error {
	res := s.db.WithContext(ctx).Delete(&models.LiveSession{}, "id = ?", sessionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoActiveSession
	}

	s.publish(ctx, sessionID, "ended", &MonitorState{Active: false, SessionID: sessionID, Selected: -1})
	return nil
}

func (s *LiveService) publish(ctx context.Context, sessionID, eventType string, data interface{}) {
	// delivery is best-effort; the write already succeeded
	_ = s.events.Publish(ctx, realtime.Event{
		Topic: liveTopic(sessionID),
		Type:  eventType,
		Data:  data,
	})
}
