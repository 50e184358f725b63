package uptime

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/websocket"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Monitor pushes uptime payloads to navbar clients every poll interval
type Monitor struct {
	reporter *Reporter
	settings func() config.UptimeSettings
	messages Messages
	registry *websocket.Registry

	stopChan    chan struct{}
	isRunning   bool
	checkOrigin func(r *http.Request) bool
	mutex       sync.Mutex
	lastInfo    *Payload
}

// NewMonitor creates a monitor. settings is read on every tick so changes
// to the poll interval take effect without a restart.
func NewMonitor(reporter *Reporter, settings func() config.UptimeSettings, messages Messages, registry *websocket.Registry) *Monitor {
	if registry == nil {
		registry = websocket.GetRegistry()
	}
	return &Monitor{
		reporter: reporter,
		settings: settings,
		messages: messages,
		registry: registry,
	}
}

// StartMonitoring begins the broadcast loop
func (m *Monitor) StartMonitoring() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isRunning {
		return fmt.Errorf("uptime monitor is already running")
	}
	m.isRunning = true
	m.stopChan = make(chan struct{})
	stop := m.stopChan

	interval := m.interval()
	ticker := time.NewTicker(interval)

	logger.Info("Starting uptime monitor", logger.Duration("interval", interval))

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check()
				if next := m.interval(); next != interval {
					logger.Debug("Uptime poll interval changed",
						logger.Duration("from", interval),
						logger.Duration("to", next))
					interval = next
					ticker.Reset(interval)
				}
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// StopMonitoring halts the broadcast loop
func (m *Monitor) StopMonitoring() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.isRunning {
		return
	}

	close(m.stopChan)
	m.isRunning = false
	logger.Info("Uptime monitor stopped")
}

// LastInfo returns the most recently broadcast payload, or nil
func (m *Monitor) LastInfo() *Payload {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.lastInfo
}

// Push builds a fresh payload and broadcasts it regardless of the ticker
func (m *Monitor) Push() {
	p := m.reporter.Build(context.Background(), m.settings(), m.messages)

	m.mutex.Lock()
	m.lastInfo = &p
	m.mutex.Unlock()

	m.registry.BroadcastUptime(p)
}

// Refresh pushes a payload now if the navbar is on and anyone is listening
func (m *Monitor) Refresh() {
	m.check()
}

func (m *Monitor) check() {
	s := m.settings()
	if !s.NavbarEnabled || !m.registry.HasClients(websocket.ChannelUptime) {
		return
	}
	m.Push()
}

func (m *Monitor) interval() time.Duration {
	return time.Duration(responsePollInterval(m.settings().PollIntervalSeconds)) * time.Second
}
