package app

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/services/settings"
	"fmt"
)

// Application represents the main application
type Application struct {
	configPath string
	config     *config.Config
	store      *settings.Store
	watcher    *config.Watcher
}

// New creates a new application instance
func New(configPath string) *Application {
	return &Application{configPath: configPath}
}

// Initialize loads configuration and initializes components
func (a *Application) Initialize() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.store = settings.NewStore(cfg, a.configPath)

	watcher, err := config.NewWatcher(a.configPath, config.DefaultWatchDebounce, a.Reload, func(err error) {
		logger.Warn("Config watcher error", logger.Err(err))
	})
	if err != nil {
		// Settings still load at startup and on SIGHUP
		logger.Warn("Config file watching unavailable", logger.Err(err))
	} else {
		watcher.Start()
		a.watcher = watcher
	}

	logger.Info("Application initialized successfully")
	return nil
}

// Reload re-reads the settings from the configuration file
func (a *Application) Reload() error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Reload(); err != nil {
		logger.Warn("Failed to reload settings", logger.Err(err))
		return err
	}
	logger.Debug("Settings reloaded", logger.String("path", a.configPath))
	return nil
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetStore returns the settings store
func (a *Application) GetStore() *settings.Store {
	return a.store
}

// Shutdown performs cleanup and shutdown operations
func (a *Application) Shutdown() {
	logger.Info("Shutting down application...")

	if a.watcher != nil {
		a.watcher.Stop()
	}

	// Ensure logs are flushed
	if err := logger.Sync(); err != nil {
		fmt.Printf("Error flushing logs: %v\n", err)
	}

	logger.Info("Application shutdown complete")
}
