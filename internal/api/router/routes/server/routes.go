package server

import (
	"OctoUptime/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the host information routes
func RegisterRoutes(engine *gin.Engine, serverHandler *handlers.ServerHandler) {
	serverGroup := engine.Group("/api/server")
	{
		serverGroup.GET("/info", serverHandler.GetSystemInfoHandler)
		serverGroup.GET("/sysinfo", serverHandler.GetSystemInfoHandler)
	}
}
