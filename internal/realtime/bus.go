package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quiz-admin-backend/internal/ws"
)

// Event is one realtime update addressed to a hub topic.
type Event struct {
	Topic string      `json:"topic"`
	Type  string      `json:"type"`
	Data  interface{} `json:"data"`
}

// Bus fans events out to every subscribed admin view. Publish never fails the
// triggering write: delivery is best-effort on top of the store's own
// guarantees.
type Bus interface {
	Publish(ctx context.Context, event Event) error
}

// Broadcaster is the hub-facing side of the bus.
type Broadcaster interface {
	Broadcast(topic string, message ws.WSMessage)
}

// LocalBus delivers events directly to the in-process hub. Used when no
// Redis address is configured (single instance deployment).
type LocalBus struct {
	hub Broadcaster
}

func NewLocalBus(hub Broadcaster) *LocalBus {
	return &LocalBus{hub: hub}
}

func (b *LocalBus) Publish(_ context.Context, event Event) error {
	b.hub.Broadcast(event.Topic, ws.WSMessage{Type: event.Type, Data: event.Data})
	return nil
}

const eventChannel = "quizadmin:events"

// RedisBus publishes events to a shared Redis channel so that every server
// instance relays them to its own websocket clients.
type RedisBus struct {
	rdb *redis.Client
	log *zap.SugaredLogger
}

func NewRedisBus(rdb *redis.Client, log *zap.SugaredLogger) *RedisBus {
	return &RedisBus{rdb: rdb, log: log}
}

func (b *RedisBus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, eventChannel, payload).Err(); err != nil {
		b.log.Errorf("realtime: publish failed: %v", err)
		return err
	}
	return nil
}
