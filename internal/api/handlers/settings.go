package handlers

import (
	"OctoUptime/internal/pkg/i18n"
	"OctoUptime/internal/pkg/permission"
	"OctoUptime/internal/services/settings"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func init() {
	// Keep JSON numbers untyped so the sanitizer sees them as sent
	binding.EnableDecoderUseNumber = true
}

// SettingsHandler reads and saves the uptime settings
type SettingsHandler struct {
	store   *settings.Store
	checker permission.Checker
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store, checker permission.Checker) *SettingsHandler {
	return &SettingsHandler{store: store, checker: checker}
}

// GetSettings returns the current settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	l := localizer(c)
	if !permission.Check(h.checker, c, permission.Settings) {
		forbidden(c, l)
		return
	}
	c.JSON(http.StatusOK, h.store.Get())
}

// SaveSettings accepts either {"plugins": {"uptime": {...}}} or the bare
// settings object, sanitizes it and persists the result
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	l := localizer(c)
	if !permission.Check(h.checker, c, permission.Settings) {
		forbidden(c, l)
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, nested := body[settings.PluginsKey]; !nested {
		body = map[string]interface{}{
			settings.PluginsKey: map[string]interface{}{settings.BlockKey: body},
		}
	}

	saved, err := h.store.Save(body)
	if errors.Is(err, settings.ErrInvalidSetting) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   l.T(i18n.MsgInvalidSettings),
			"details": err.Error(),
		})
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
