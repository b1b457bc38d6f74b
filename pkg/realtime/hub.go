package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event is the wire frame pushed to subscribers.
type Event struct {
	Type    string      `json:"type"`
	Room    string      `json:"room"`
	Payload interface{} `json:"payload"`
}

// ConnectionObserver receives connection and push counts, typically backed
// by the metrics service. All methods must be safe for concurrent use.
type ConnectionObserver interface {
	ClientConnected(delta int)
	ObservePush()
}

// Hub tracks connected clients by room and fans events out to them.
// Delivery is at-most-once: clients that are not connected, or whose send
// buffer is full, miss the push. The persisted record remains the source of
// truth for anything pushed through here.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	observer ConnectionObserver
	logger   *zap.Logger
}

// NewHub constructs a Hub. Run must be started on its own goroutine.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// SetObserver installs a connection observer. Call before Run.
func (h *Hub) SetObserver(observer ConnectionObserver) {
	h.observer = observer
}

// Run processes client registrations until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			for room := range client.rooms {
				h.addToRoom(room, client)
			}
			h.mu.Unlock()
			if h.observer != nil {
				h.observer.ClientConnected(1)
			}
		case client := <-h.unregister:
			h.removeClient(client)
			if h.observer != nil {
				h.observer.ClientConnected(-1)
			}
		}
	}
}

// Join subscribes an already-registered client to an additional room.
func (h *Hub) Join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client.rooms[room] = struct{}{}
	h.addToRoom(room, client)
}

// Publish pushes payload to every client joined to room. It never blocks:
// clients whose buffers are full are skipped.
func (h *Hub) Publish(room, eventType string, payload interface{}) {
	frame, err := json.Marshal(Event{Type: eventType, Room: room, Payload: payload})
	if err != nil {
		h.logger.Warn("realtime payload not serialisable", zap.String("room", room), zap.Error(err))
		return
	}

	if h.observer != nil {
		h.observer.ObservePush()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		select {
		case client.send <- frame:
		default:
			h.logger.Debug("dropping realtime frame, client buffer full", zap.String("room", room))
		}
	}
}

// Subscribers reports how many clients are joined to room.
func (h *Hub) Subscribers(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) addToRoom(room string, client *Client) {
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range client.rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(client.send)
}
