package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quiz-admin-backend/internal/ws"
)

// Relay consumes the shared Redis event channel and forwards each event to
// the local hub. One relay runs per server instance.
type Relay struct {
	rdb *redis.Client
	hub Broadcaster
	log *zap.SugaredLogger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(rdb *redis.Client, hub Broadcaster, log *zap.SugaredLogger) *Relay {
	return &Relay{rdb: rdb, hub: hub, log: log}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	pubsub := r.rdb.Subscribe(ctx, eventChannel)

	go func() {
		defer close(r.done)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				r.forward(msg)
			}
		}
	}()
	r.log.Info("realtime: relay started")
}

func (r *Relay) forward(msg *redis.Message) {
	var event Event
	if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
		r.log.Warnf("realtime: dropping malformed event: %v", err)
		return
	}
	r.hub.Broadcast(event.Topic, ws.WSMessage{Type: event.Type, Data: event.Data})
}

func (r *Relay) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.log.Info("realtime: relay stopped")
}
