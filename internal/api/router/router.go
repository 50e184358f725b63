package router

import (
	"OctoUptime/internal/api/handlers"
	"OctoUptime/internal/api/middleware"
	"OctoUptime/internal/api/router/routes/auth"
	"OctoUptime/internal/api/router/routes/server"
	uptimeRoutes "OctoUptime/internal/api/router/routes/uptime"
	"OctoUptime/internal/api/router/routes/websocket"
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/pkg/permission"
	"OctoUptime/internal/services/settings"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router encapsulates the HTTP router functionality
type Router struct {
	config  *config.Config
	engine  *gin.Engine
	checker permission.Checker
	server  *http.Server

	uptimeHandler   *handlers.UptimeHandler
	settingsHandler *handlers.SettingsHandler
	pluginHandler   *handlers.PluginHandler
	serverHandler   *handlers.ServerHandler

	uptimeMonitor *uptime.Monitor
}

// New creates a new router instance with the given configuration
func New(cfg *config.Config, store *settings.Store, reporter *uptime.Reporter, uptimeMonitor *uptime.Monitor) *Router {
	// Configure gin mode based on config
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	var checker permission.Checker = permission.AllowAll{}
	if cfg.API.AuthEnabled() {
		checker = permission.ClaimsChecker{}
	}

	return &Router{
		config:  cfg,
		engine:  engine,
		checker: checker,
		server: &http.Server{
			Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:        engine,
			ReadTimeout:    seconds(cfg.Server.ReadTimeout),
			WriteTimeout:   seconds(cfg.Server.WriteTimeout),
			IdleTimeout:    seconds(cfg.Server.IdleTimeout),
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
		uptimeHandler:   handlers.NewUptimeHandler(reporter, store, checker),
		settingsHandler: handlers.NewSettingsHandler(store, checker),
		pluginHandler:   handlers.NewPluginHandler(cfg.API.AuthEnabled()),
		serverHandler:   handlers.NewServerHandler(reporter.Resolver(), checker),
		uptimeMonitor:   uptimeMonitor,
	}
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() *Router {
	r.engine.Use(gin.Recovery())
	r.engine.Use(LoggerMiddleware())

	if r.config.API.CORS.Enabled {
		r.engine.Use(cors.New(corsConfig(r.config)))
	}
	if r.config.API.AuthEnabled() {
		r.engine.Use(middleware.JWTAuthMiddleware(r.config.API.Auth.JWTSecret))
	} else {
		logger.Warn("API authentication is disabled; all permission checks pass")
	}

	r.registerAPIRoutes()
	r.registerWebSocketRoutes()
	r.registerRootAPIEndpoint()

	// Log all registered routes for debugging
	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowOrigins:  cfg.API.CORS.AllowedOrigins,
		AllowMethods:  cfg.API.CORS.AllowedMethods,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
	}
	if len(c.AllowMethods) == 0 {
		c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	return c
}

// checkOrigin applies the CORS origin list to WebSocket upgrades. Without
// CORS the gorilla same-origin default is kept.
func checkOrigin(cfg *config.Config) func(r *http.Request) bool {
	if !cfg.API.CORS.Enabled {
		return nil
	}
	allowed := cfg.API.CORS.AllowedOrigins
	return func(r *http.Request) bool {
		if len(allowed) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// registerAPIRoutes registers all API-specific routes
func (r *Router) registerAPIRoutes() {
	if err := (&auth.AuthRegistrar{}).Register(r.engine, r.config); err != nil {
		logger.Error("Failed to register auth routes", logger.Err(err))
	}

	uptimeRoutes.RegisterRoutes(r.engine, r.uptimeHandler, r.settingsHandler, r.pluginHandler)
	server.RegisterRoutes(r.engine, r.serverHandler)
}

// registerWebSocketRoutes registers all WebSocket routes
func (r *Router) registerWebSocketRoutes() {
	if r.uptimeMonitor == nil {
		return
	}
	r.uptimeMonitor.SetCheckOrigin(checkOrigin(r.config))
	websocket.RegisterWebSocketRoutes(r.engine, r.uptimeMonitor, r.checker)
}

// registerRootAPIEndpoint provides a simple API health check endpoint
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     r.config.AppName,
			"version": handlers.PluginVersion,
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// LoggerMiddleware creates a middleware for logging HTTP requests
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for WebSocket connections
		if c.Request.Header.Get("Upgrade") == "websocket" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Info("HTTP Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}

// Start starts the HTTP server and blocks until it stops
func (r *Router) Start() {
	logger.Info("Starting HTTP server", logger.String("address", r.server.Addr))

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Failed to start HTTP server", logger.Err(err))
	}
}

// Stop gracefully shuts the HTTP server down
func (r *Router) Stop(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
