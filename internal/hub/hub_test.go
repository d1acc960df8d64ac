package hub

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHub(log)
}

func TestHub_PublishReachesOnlyTargetUser(t *testing.T) {
	h := newTestHub()
	alice := h.Subscribe(1)
	bob := h.Subscribe(2)

	h.Publish(1, Event{Type: EventFollow, Payload: map[string]string{"follower": "bob"}})

	select {
	case msg := <-alice:
		assert.Equal(t, EventFollow, msg.Type)
		var got Event
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, EventFollow, got.Type)
	default:
		t.Fatal("expected an event for user 1")
	}

	select {
	case <-bob:
		t.Fatal("user 2 should not receive user 1's events")
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := newTestHub()
	first := h.Subscribe(1)
	second := h.Subscribe(1)
	assert.Equal(t, 2, h.Subscribers(1))

	h.Unsubscribe(1, first)
	_, open := <-first
	assert.False(t, open, "channel is closed")
	assert.Equal(t, 1, h.Subscribers(1))

	h.Unsubscribe(1, first)
	h.Unsubscribe(1, second)
	assert.Zero(t, h.Subscribers(1))

	h.Publish(1, Event{Type: EventLike})
}

func TestHub_SlowClientDropsEvents(t *testing.T) {
	h := newTestHub()
	client := h.Subscribe(1)

	for i := 0; i < clientBuffer+5; i++ {
		h.Publish(1, Event{Type: EventLike, Payload: i})
	}
	assert.Len(t, client, clientBuffer)
}

func TestHub_Close(t *testing.T) {
	h := newTestHub()
	first := h.Subscribe(1)
	second := h.Subscribe(2)

	h.Close()
	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)
	assert.Zero(t, h.Subscribers(1))

	// Unsubscribe from the stream handler after Close must not panic.
	h.Unsubscribe(1, first)
	h.Publish(1, Event{Type: EventFollow})
	h.Close()

	late := h.Subscribe(3)
	_, open = <-late
	assert.False(t, open, "streams opened after Close are already closed")
	assert.Zero(t, h.Subscribers(3))
}
