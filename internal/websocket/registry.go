package websocket

import (
	"OctoUptime/internal/pkg/logger"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Channel names a broadcast topic
type Channel string

// ChannelUptime carries navbar uptime payloads
const ChannelUptime Channel = "uptime"

const writeWait = 5 * time.Second

var errClientGone = errors.New("websocket client is no longer connected")

var (
	// Registry singleton
	registry *Registry
	once     sync.Once
)

// Registry manages one WebSocket handler per channel
type Registry struct {
	mu       sync.RWMutex
	handlers map[Channel]*Handler
}

// GetRegistry returns the WebSocket registry singleton
func GetRegistry() *Registry {
	once.Do(func() {
		registry = NewRegistry()
	})
	return registry
}

// NewRegistry creates an empty registry. Most callers want GetRegistry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Channel]*Handler)}
}

// Handler manages WebSocket connections
type Handler struct {
	clients  map[*Client]bool
	mu       sync.Mutex
	upgrader websocket.Upgrader
}

// Client represents a WebSocket client connection
type Client struct {
	conn *websocket.Conn
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to
// apply gorilla's same-origin default.
func NewHandler(checkOrigin func(r *http.Request) bool) *Handler {
	return &Handler{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeHTTP upgrades the connection and keeps it registered until the client leaves
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Serve(w, r, nil)
}

// Serve is ServeHTTP with a hook that runs once the client is registered.
// The hook gets a send function that writes to the new client only.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, onConnect func(send func(message []byte) error)) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket connection",
			logger.String("error", err.Error()))
		return
	}

	client := &Client{conn: conn}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	defer func() {
		conn.Close()
		h.mu.Lock()
		delete(h.clients, client)
		h.mu.Unlock()
	}()

	if onConnect != nil {
		onConnect(func(message []byte) error {
			return h.send(client, message)
		})
	}

	// Reads are discarded; the loop only detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends a message to all clients of this handler
func (h *Handler) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Dropping WebSocket client after write error",
				logger.String("error", err.Error()))
			client.conn.Close()
			delete(h.clients, client)
		}
	}
}

// send writes to a single client, serialized with Broadcast
func (h *Handler) send(client *Client, message []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[client] {
		return errClientGone
	}
	client.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		client.conn.Close()
		delete(h.clients, client)
		return err
	}
	return nil
}

// ClientCount returns the number of connected clients
func (h *Handler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Get returns the handler for a channel, or nil
func (r *Registry) Get(ch Channel) *Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[ch]
}

// GetOrCreate returns the handler for a channel, creating it on first use
func (r *Registry) GetOrCreate(ch Channel, checkOrigin func(r *http.Request) bool) *Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handlers[ch]
	if !ok {
		h = NewHandler(checkOrigin)
		r.handlers[ch] = h
	}
	return h
}

// HasClients reports whether anyone is listening on a channel
func (r *Registry) HasClients(ch Channel) bool {
	h := r.Get(ch)
	return h != nil && h.ClientCount() > 0
}
