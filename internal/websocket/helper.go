package websocket

import (
	"OctoUptime/internal/pkg/logger"
)

// LogWebSocketConnection logs a new WebSocket connection with authentication info
func LogWebSocketConnection(clientIP string, ch Channel, username string) {
	if username != "" {
		logger.Info("New authenticated WebSocket client connected",
			logger.String("channel", string(ch)),
			logger.String("client_ip", clientIP),
			logger.String("username", username))
		return
	}
	logger.Info("WebSocket client connected",
		logger.String("channel", string(ch)),
		logger.String("client_ip", clientIP))
}
