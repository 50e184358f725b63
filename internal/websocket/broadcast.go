package websocket

import (
	"OctoUptime/internal/pkg/logger"
	"encoding/json"
	"time"
)

// Envelope wraps every pushed payload with its channel and send time
type Envelope struct {
	Channel   Channel     `json:"channel"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// Encode marshals a payload into the frame format clients expect
func Encode(ch Channel, payload interface{}) ([]byte, error) {
	return json.Marshal(Envelope{
		Channel:   ch,
		Data:      payload,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Broadcast sends a payload to all clients of a channel
func (r *Registry) Broadcast(ch Channel, payload interface{}) {
	handler := r.Get(ch)
	if handler == nil {
		return
	}

	data, err := Encode(ch, payload)
	if err != nil {
		logger.Error("Failed to marshal payload for WebSocket broadcast",
			logger.String("channel", string(ch)),
			logger.String("error", err.Error()))
		return
	}
	handler.Broadcast(data)
}

// BroadcastUptime sends an uptime payload to navbar clients
func (r *Registry) BroadcastUptime(payload interface{}) {
	r.Broadcast(ChannelUptime, payload)
}
