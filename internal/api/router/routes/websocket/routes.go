package websocket

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/pkg/permission"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the websocket routes
func RegisterWebSocketRoutes(router *gin.Engine, uptimeMonitor *uptime.Monitor, checker permission.Checker) {
	// Navbar push channel
	router.GET("/ws/uptime", func(c *gin.Context) {
		if !permission.Check(checker, c, permission.System) {
			l := i18n.New(c.GetHeader("Accept-Language"))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": l.T(i18n.MsgForbidden)})
			return
		}
		uptimeMonitor.WebSocketHandler(c)
	})
}
