package hub

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event types pushed to users.
const (
	EventFollow = "follow"
	EventLike   = "like"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Frame is one encoded event queued for a stream.
type Frame struct {
	Type string
	Data []byte
}

// Client is one open event stream. The SSE handler reads from it until it
// is closed by Unsubscribe or Close.
type Client chan Frame

// clientBuffer is how many events a client may lag behind before drops.
const clientBuffer = 16

// Hub fans events out to the open streams of each user.
type Hub struct {
	users  map[uint]map[Client]bool
	closed bool
	mu     sync.RWMutex
	log    *logrus.Logger
}

// NewHub creates a new Hub.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		users: make(map[uint]map[Client]bool),
		log:   log,
	}
}

// Subscribe opens a new stream for userID. After Close it returns an
// already closed stream.
func (h *Hub) Subscribe(userID uint) Client {
	client := make(Client, clientBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(client)
		return client
	}

	if _, ok := h.users[userID]; !ok {
		h.users[userID] = make(map[Client]bool)
	}
	h.users[userID][client] = true
	return client
}

// Unsubscribe removes a stream and closes its channel.
func (h *Hub) Unsubscribe(userID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.users[userID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.users, userID)
			}
		}
	}
}

// Publish sends an event to every open stream of userID. Slow streams
// whose buffer is full miss the event.
func (h *Hub) Publish(userID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.users[userID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.log.WithError(err).WithField("type", event.Type).Error("marshal event")
		return
	}
	frame := Frame{Type: event.Type, Data: data}

	for client := range clients {
		select {
		case client <- frame:
		default:
			h.log.WithFields(logrus.Fields{"user_id": userID, "type": event.Type}).Warn("event dropped for slow client")
		}
	}
}

// Subscribers returns the number of open streams for userID.
func (h *Hub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// Close ends every open stream and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for userID, clients := range h.users {
		for client := range clients {
			close(client)
		}
		delete(h.users, userID)
	}
	h.log.Info("event hub closed")
}
