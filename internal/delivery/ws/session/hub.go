package ws_session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/gorilla/websocket"
)

const sendBuffer = 64

// allModes is the subscription key of clients that did not filter by mode.
const allModes model.MatchMode = ""

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	mode model.MatchMode
}

// Hub fans session events out to websocket subscribers.
type Hub struct {
	mu sync.RWMutex

	// subscribers per match mode filter
	topics map[model.MatchMode]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		topics: make(map[model.MatchMode]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[client.mode]; !ok {
		h.topics[client.mode] = make(map[*Client]bool)
	}
	h.topics[client.mode][client] = true

	h.logger.Info("subscriber registered", "mode", client.mode)
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(client)
	h.logger.Info("subscriber unregistered", "mode", client.mode)
}

// drop must be called with mu held.
func (h *Hub) drop(client *Client) {
	topic, ok := h.topics[client.mode]
	if !ok {
		return
	}
	if _, ok := topic[client]; !ok {
		return
	}
	delete(topic, client)
	close(client.send)
	if len(topic) == 0 {
		delete(h.topics, client.mode)
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, topic := range h.topics {
		n += len(topic)
	}
	return n
}

// Publish delivers e to clients subscribed to its mode and to every mode.
// Clients whose buffer is full are disconnected.
func (h *Hub) Publish(e model.SessionEvent) {
	msg, err := json.Marshal(e)
	if err != nil {
		h.logger.Error("failed to encode session event", "type", e.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, mode := range []model.MatchMode{e.MatchMode, allModes} {
		for client := range h.topics[mode] {
			select {
			case client.send <- msg:
			default:
				h.logger.Warn("subscriber is too slow, dropping", "mode", client.mode)
				h.drop(client)
			}
		}
		if e.MatchMode == allModes {
			break
		}
	}
}

func (h *Hub) readLoop(client *Client) {
	defer func() {
		h.unregister(client)
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(client *Client) {
	defer client.conn.Close()

	for msg := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	if err := client.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
		h.logger.Debug("failed to send close frame", "error", err)
	}
}
