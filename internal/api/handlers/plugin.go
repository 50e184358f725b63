package handlers

import (
	"OctoUptime/internal/pkg/i18n"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PluginVersion is overridden at build time with -ldflags "-X ...PluginVersion=x.y.z"
var PluginVersion = "dev"

// TemplateConfig describes one UI template the frontend mounts
type TemplateConfig struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	Template       string `json:"template"`
	CustomBindings bool   `json:"custom_bindings"`
}

// UpdateInfo tells an updater where releases are published
type UpdateInfo struct {
	DisplayName    string `json:"displayName"`
	DisplayVersion string `json:"displayVersion"`
	Type           string `json:"type"`
	User           string `json:"user"`
	Repo           string `json:"repo"`
	Current        string `json:"current"`
	Pip            string `json:"pip"`
}

// PluginInfo is the metadata the frontend needs to integrate the navbar widget
type PluginInfo struct {
	Identifier      string                `json:"identifier"`
	Version         string                `json:"version"`
	APIProtected    bool                  `json:"api_protected"`
	Autoescaped     bool                  `json:"template_autoescaped"`
	Assets          map[string][]string   `json:"assets"`
	Templates       []TemplateConfig      `json:"templates"`
	UpdateInfo      map[string]UpdateInfo `json:"update_information"`
	SupportedLocale []string              `json:"languages"`
}

// PluginHandler serves plugin metadata
type PluginHandler struct {
	apiProtected bool
}

// NewPluginHandler creates a new plugin handler
func NewPluginHandler(apiProtected bool) *PluginHandler {
	return &PluginHandler{apiProtected: apiProtected}
}

// GetInfo returns the plugin metadata with localized template names
func (h *PluginHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.info(localizer(c)))
}

func (h *PluginHandler) info(l *i18n.Localizer) PluginInfo {
	langs := []string{}
	for _, tag := range i18n.Languages() {
		langs = append(langs, tag.String())
	}

	return PluginInfo{
		Identifier:   "octoprint_uptime",
		Version:      PluginVersion,
		APIProtected: h.apiProtected,
		Autoescaped:  true,
		Assets:       map[string][]string{"js": {"js/uptime.js"}},
		Templates: []TemplateConfig{
			{Type: "navbar", Name: l.T(i18n.MsgNavbarUptime), Template: "navbar.jinja2", CustomBindings: true},
			{Type: "settings", Name: l.T(i18n.MsgSettingsTitle), Template: "settings.jinja2", CustomBindings: false},
		},
		UpdateInfo: map[string]UpdateInfo{
			"octoprint_uptime": {
				DisplayName:    "OctoPrint-Uptime",
				DisplayVersion: PluginVersion,
				Type:           "github_release",
				User:           "Ajimaru",
				Repo:           "OctoPrint-Uptime",
				Current:        PluginVersion,
				Pip:            "https://github.com/Ajimaru/OctoPrint-Uptime/archive/{target_version}.zip",
			},
		},
		SupportedLocale: langs,
	}
}
