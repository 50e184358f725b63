package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Throttle spaces out repeated debug entries. Entries arriving sooner than
// the interval after the last emitted one are dropped.
type Throttle struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewThrottle creates a throttle that has not emitted anything yet
func NewThrottle() *Throttle {
	return &Throttle{now: time.Now}
}

// Allow reports whether an entry may be emitted now and, if so, records it
func (t *Throttle) Allow(interval time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < interval {
		return false
	}
	t.last = now
	return true
}

// Debug logs msg at debug level when debug output is on and the interval has passed
func (t *Throttle) Debug(interval time.Duration, msg string, fields ...zap.Field) {
	if !DebugEnabled() {
		return
	}
	if !t.Allow(interval) {
		return
	}
	Log.Debug(msg, fields...)
}
