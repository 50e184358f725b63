package uptime

import (
	"OctoUptime/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the uptime plugin routes
func RegisterRoutes(engine *gin.Engine, uptimeHandler *handlers.UptimeHandler, settingsHandler *handlers.SettingsHandler, pluginHandler *handlers.PluginHandler) {
	pluginGroup := engine.Group("/api/plugin/uptime")
	{
		pluginGroup.GET("", uptimeHandler.GetUptime)
		pluginGroup.GET("/info", pluginHandler.GetInfo)

		pluginGroup.GET("/settings", settingsHandler.GetSettings)
		pluginGroup.POST("/settings", settingsHandler.SaveSettings)
	}
}
