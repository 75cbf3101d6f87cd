package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"quiz-admin-backend/internal/models"

	"gorm.io/gorm"
)

// localMinuteLayout is the shape the admin edits: local time, minute precision.
const localMinuteLayout = "2006-01-02T15:04"

type ConfigService struct {
	db *gorm.DB
}

func NewConfigService(db *gorm.DB) *ConfigService {
	return &ConfigService{db: db}
}

// GetTimeLeft reads the single config document and renders its value for
// editing: absent or null becomes empty, an instant becomes a local
// minute-precision string, anything else passes through verbatim.
func (s *ConfigService) GetTimeLeft(ctx context.Context) (string, error) {
	var cfg models.GlobalConfig
	err := s.db.WithContext(ctx).First(&cfg, "key = ?", models.GlobalConfigKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return DisplayTimeLeft(cfg.TimeLeftForKBS), nil
}

// SetTimeLeft persists the edited value. The document is created lazily on
// first save.
func (s *ConfigService) SetTimeLeft(ctx context.Context, input string) error {
	stored := EncodeTimeLeft(input)

	db := s.db.WithContext(ctx)
	var cfg models.GlobalConfig
	err := db.First(&cfg, "key = ?", models.GlobalConfigKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.GlobalConfig{
			Key:            models.GlobalConfigKey,
			TimeLeftForKBS: stored,
		}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&models.GlobalConfig{}).
		Where("key = ?", models.GlobalConfigKey).
		Update("timeleftforkbs", stored).Error
}

// DisplayTimeLeft converts the stored union into the editable local string.
func DisplayTimeLeft(stored *string) string {
	if stored == nil {
		return ""
	}
	if t, ok := parseInstant(*stored); ok {
		return t.Local().Format(localMinuteLayout)
	}
	return *stored
}

// EncodeTimeLeft converts the edited string back into the stored union:
// empty writes an explicit null, a parseable local minute string writes an
// instant, and anything else is kept raw so no input is silently dropped.
func EncodeTimeLeft(input string) *string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	if t, err := time.ParseInLocation(localMinuteLayout, trimmed, time.Local); err == nil {
		v := t.Format(time.RFC3339)
		return &v
	}
	return &trimmed
}

func parseInstant(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
