package ws

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type envelope struct {
	userID  uuid.UUID
	payload []byte
}

type Hub struct {
	rooms      map[uuid.UUID]map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger.With().Str("component", "ws").Logger(),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room, ok := h.rooms[client.userID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.userID] = room
			}
			room[client] = true
			total := len(room)
			h.mutex.Unlock()
			h.logger.Debug().Str("user_id", client.userID.String()).Int("room_clients", total).Msg("WS connected")

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case msg := <-h.broadcast:
			h.mutex.RLock()
			room := h.rooms[msg.userID]
			snapshot := make([]*Client, 0, len(room))
			for c := range room {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- msg.payload:
				default:
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	room := h.rooms[client.userID]
	if _, ok := room[client]; ok {
		delete(room, client)
		close(client.send)
		if len(room) == 0 {
			delete(h.rooms, client.userID)
		}
	}
	h.mutex.Unlock()
	h.logger.Debug().Str("user_id", client.userID.String()).Msg("WS disconnected")
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for userID, room := range h.rooms {
		for c := range room {
			close(c.send)
		}
		delete(h.rooms, userID)
	}
}

// Register reports false once Run has returned.
func (h *Hub) Register(client *Client) bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast never blocks; when the buffer is full the event is dropped.
func (h *Hub) Broadcast(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- envelope{userID: userID, payload: payload}:
	default:
		h.logger.Warn().Str("user_id", userID.String()).Msg("WS broadcast dropped, buffer full")
	}
}

func (h *Hub) ClientCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[userID])
}
