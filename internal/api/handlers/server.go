package handlers

import (
	"OctoUptime/internal/monitoring/server/sysinfo"
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/pkg/permission"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerHandler contains handlers for server-related endpoints
type ServerHandler struct {
	resolver *uptime.Resolver
	checker  permission.Checker
}

// NewServerHandler creates a new server handler
func NewServerHandler(resolver *uptime.Resolver, checker permission.Checker) *ServerHandler {
	return &ServerHandler{
		resolver: resolver,
		checker:  checker,
	}
}

// GetSystemInfoHandler returns host information including the resolved uptime
func (h *ServerHandler) GetSystemInfoHandler(c *gin.Context) {
	l := localizer(c)
	if !permission.Check(h.checker, c, permission.System) {
		forbidden(c, l)
		return
	}

	info, err := sysinfo.GetSystemInfo(c.Request.Context(), h.resolver, l.T(i18n.MsgUnknown))
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
