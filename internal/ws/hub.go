package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub fans application events out to connected candidates. Each client is
// pinned to the candidate it authenticated as; events for other candidates
// never reach it.
type Hub struct {
	clients    map[*Client]bool
	events     chan event
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type event struct {
	candidateID uuid.UUID
	payload     []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		events:     make(chan event, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | candidate=%s total_clients=%d", client.candidateID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | total_clients=%d", total)
			}

		case ev := <-h.events:
			h.mutex.RLock()
			targets := make([]*Client, 0)
			for c := range h.clients {
				if c.candidateID == ev.candidateID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- ev.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish queues an event for one candidate's connections. Drops the event
// when the hub's buffer is full rather than blocking the caller.
func (h *Hub) Publish(candidateID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event{candidateID: candidateID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS event dropped | candidate=%s", candidateID)
		}
	}
}
