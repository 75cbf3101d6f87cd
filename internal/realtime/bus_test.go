package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quiz-admin-backend/internal/ws"
)

type broadcastCall struct {
	topic string
	msg   ws.WSMessage
}

type recordingBroadcaster struct {
	calls chan broadcastCall
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{calls: make(chan broadcastCall, 8)}
}

func (b *recordingBroadcaster) Broadcast(topic string, msg ws.WSMessage) {
	b.calls <- broadcastCall{topic: topic, msg: msg}
}

func TestLocalBusDeliversDirectly(t *testing.T) {
	rec := newRecordingBroadcaster()
	bus := NewLocalBus(rec)

	err := bus.Publish(context.Background(), Event{Topic: "chat:s1", Type: "message", Data: "hi"})
	require.NoError(t, err)

	select {
	case call := <-rec.calls:
		assert.Equal(t, "chat:s1", call.topic)
		assert.Equal(t, "message", call.msg.Type)
	default:
		t.Fatal("event was not delivered")
	}
}

func TestRedisBusRoundTripThroughRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	rec := newRecordingBroadcaster()
	relay := NewRelay(rdb, rec, zap.NewNop().Sugar())
	relay.Start()
	defer relay.Stop()

	bus := NewRedisBus(rdb, zap.NewNop().Sugar())
	err := bus.Publish(context.Background(), Event{
		Topic: "live:s1",
		Type:  "state",
		Data:  map[string]interface{}{"adminLocked": true},
	})
	require.NoError(t, err)

	select {
	case call := <-rec.calls:
		assert.Equal(t, "live:s1", call.topic)
		assert.Equal(t, "state", call.msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not relayed")
	}
}

func TestRelayDropsMalformedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	rec := newRecordingBroadcaster()
	relay := NewRelay(rdb, rec, zap.NewNop().Sugar())
	relay.Start()
	defer relay.Stop()

	require.NoError(t, rdb.Publish(context.Background(), eventChannel, "{not json").Err())

	select {
	case <-rec.calls:
		t.Fatal("malformed event must not be forwarded")
	case <-time.After(200 * time.Millisecond):
	}
}
