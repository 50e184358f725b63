package handlers

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError provides a consistent way to handle errors in route handlers
func HandleError(c *gin.Context, err error) {
	logger.Error("API error",
		logger.String("path", c.Request.URL.Path),
		logger.Err(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

// localizer picks the catalog from the Accept-Language header
func localizer(c *gin.Context) *i18n.Localizer {
	return i18n.New(c.GetHeader("Accept-Language"))
}

func messages(l *i18n.Localizer) uptime.Messages {
	return uptime.Messages{
		Unknown: l.T(i18n.MsgUnknown),
		Note:    l.T(i18n.MsgUptimeNote),
	}
}

func forbidden(c *gin.Context, l *i18n.Localizer) {
	logger.Warn("Permission denied",
		logger.String("path", c.Request.URL.Path),
		logger.String("client_ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": l.T(i18n.MsgForbidden)})
}
