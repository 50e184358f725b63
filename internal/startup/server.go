package startup

import (
	"OctoUptime/internal/api/router"
	"OctoUptime/internal/app"
)

// StartServer initializes and starts the HTTP server
func StartServer(application *app.Application) *router.Builder {
	builder := router.NewBuilder(application.GetConfig(), application.GetStore()).
		WithAllRoutes()

	go builder.Start()

	return builder
}
