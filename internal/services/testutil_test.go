package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quiz-admin-backend/internal/models"
	"quiz-admin-backend/internal/realtime"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Identity{},
		&models.UserRecord{},
		&models.GlobalConfig{},
		&models.LiveSession{},
		&models.ChatMessage{},
	))
	return db
}

// captureBus records published events instead of fanning them out.
type captureBus struct {
	events []realtime.Event
}

func (b *captureBus) Publish(_ context.Context, event realtime.Event) error {
	b.events = append(b.events, event)
	return nil
}

func (b *captureBus) last(t *testing.T) realtime.Event {
	t.Helper()
	require.NotEmpty(t, b.events)
	return b.events[len(b.events)-1]
}
