package startup

import (
	"OctoUptime/internal/app"
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"OctoUptime/internal/utils/finder"
	"os"
)

// InitializeApplication initializes the application with the given config path
func InitializeApplication(configPath string) *app.Application {
	foundConfigPath, err := finder.FindConfigFile(configPath, true)
	if err != nil {
		logger.Error("Failed to find configuration", logger.Err(err))
		os.Exit(1)
	}

	logger.Info("Using configuration file", logger.String("path", foundConfigPath))

	application := app.New(foundConfigPath)
	if err := application.Initialize(); err != nil {
		logger.Error("Failed to initialize application", logger.Err(err))
		os.Exit(1)
	}

	return application
}

// SetupDefaultLogger initializes a console-only logger for early startup
func SetupDefaultLogger() {
	cfg := config.GetDefaultConfig()
	cfg.Logs.FilePath = ""
	cfg.Logs.Format = "console"
	if err := logger.Init(cfg); err != nil {
		// Can't use logger yet, so use panic
		panic("Error initializing logger: " + err.Error())
	}
}
