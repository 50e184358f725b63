package uptime

import (
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/websocket"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCheckOrigin sets the origin policy used for new navbar connections.
// It only affects a channel handler that has not been created yet.
func (m *Monitor) SetCheckOrigin(fn func(r *http.Request) bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.checkOrigin = fn
}

// WebSocketHandler upgrades a navbar client and sends it a payload right away
// so it does not wait a full poll interval for its first value
func (m *Monitor) WebSocketHandler(c *gin.Context) {
	m.mutex.Lock()
	checkOrigin := m.checkOrigin
	m.mutex.Unlock()

	handler := m.registry.GetOrCreate(websocket.ChannelUptime, checkOrigin)
	handler.Serve(c.Writer, c.Request, func(send func([]byte) error) {
		websocket.LogWebSocketConnection(c.ClientIP(), websocket.ChannelUptime, c.GetString("username"))
		m.greet(c.Request.Context(), send)
	})
}

// greet writes the current payload to one new client. Nothing is sent while
// the navbar is disabled.
func (m *Monitor) greet(ctx context.Context, send func([]byte) error) {
	s := m.settings()
	if !s.NavbarEnabled {
		return
	}

	p := m.reporter.Build(ctx, s, m.messages)
	msg, err := websocket.Encode(websocket.ChannelUptime, p)
	if err != nil {
		logger.Error("Failed to marshal uptime payload", logger.Err(err))
		return
	}
	if err := send(msg); err != nil {
		logger.Debug("Failed to send initial uptime payload", logger.Err(err))
	}
}
