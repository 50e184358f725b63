package handlers

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/permission"
	"OctoUptime/internal/services/settings"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UptimeHandler serves the uptime endpoint
type UptimeHandler struct {
	reporter *uptime.Reporter
	store    *settings.Store
	checker  permission.Checker
}

// NewUptimeHandler creates a new uptime handler
func NewUptimeHandler(reporter *uptime.Reporter, store *settings.Store, checker permission.Checker) *UptimeHandler {
	return &UptimeHandler{
		reporter: reporter,
		store:    store,
		checker:  checker,
	}
}

// GetUptime returns the system uptime in every display format together with
// the navbar settings. Only a permission denial produces an error status.
func (h *UptimeHandler) GetUptime(c *gin.Context) {
	l := localizer(c)
	if !permission.Check(h.checker, c, permission.System) {
		forbidden(c, l)
		return
	}

	p := h.reporter.Build(c.Request.Context(), h.store.Get(), messages(l))
	c.JSON(http.StatusOK, p)
}
