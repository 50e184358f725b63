package router

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/services/settings"
	"OctoUptime/internal/websocket"
	"context"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may take on shutdown
const shutdownTimeout = 5 * time.Second

// Builder provides a fluent interface for constructing a router
type Builder struct {
	router *Router
	store  *settings.Store

	// Monitors for lifecycle management
	monitors struct {
		uptime *uptime.Monitor
	}
}

// NewBuilder creates a new router builder
func NewBuilder(cfg *config.Config, store *settings.Store) *Builder {
	resolver := uptime.NewResolver(cfg.Uptime)
	reporter := uptime.NewReporter(resolver, uptime.NewProcessReader())
	uptimeMonitor := createUptimeMonitor(reporter, store)

	builder := &Builder{
		router: New(cfg, store, reporter, uptimeMonitor),
		store:  store,
	}
	builder.monitors.uptime = uptimeMonitor

	// Settings changes reach open navbars without waiting for the next tick
	store.Subscribe(func(_, _ settings.Settings) {
		uptimeMonitor.Refresh()
	})

	return builder
}

// createUptimeMonitor creates and starts the navbar push monitor
func createUptimeMonitor(reporter *uptime.Reporter, store *settings.Store) *uptime.Monitor {
	l := i18n.New()
	messages := uptime.Messages{
		Unknown: l.T(i18n.MsgUnknown),
		Note:    l.T(i18n.MsgUptimeNote),
	}

	monitor := uptime.NewMonitor(reporter, store.Get, messages, websocket.GetRegistry())
	if err := monitor.StartMonitoring(); err != nil {
		logger.Warn("Failed to start uptime monitor", logger.Err(err))
	} else {
		logger.Debug("Started uptime monitoring service")
	}
	return monitor
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	b.router.Initialize()
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// Start starts the HTTP server
func (b *Builder) Start() {
	b.router.Start()
}

// Shutdown stops the HTTP server and all monitors
func (b *Builder) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := b.router.Stop(ctx); err != nil {
		logger.Warn("HTTP server did not shut down cleanly", logger.Err(err))
	}

	if b.monitors.uptime != nil {
		b.monitors.uptime.StopMonitoring()
		logger.Info("Stopped uptime monitoring service")
	}
}
