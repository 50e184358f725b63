package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName string       `yaml:"app_name"`
	Server  ServerConfig `yaml:"server"`
	Agent   AgentConfig  `yaml:"agent"`
	Uptime  UptimeConfig `yaml:"uptime"`
	Plugin  PluginConfig `yaml:"plugins"`
	Logs    LogsConfig   `yaml:"logs"`
	API     API          `yaml:"api"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Port           int    `yaml:"port"`
	Host           string `yaml:"host"`
	ReadTimeout    int    `yaml:"read_timeout"`
	WriteTimeout   int    `yaml:"write_timeout"`
	IdleTimeout    int    `yaml:"idle_timeout"`
	MaxHeaderBytes int    `yaml:"max_header_bytes"`
}

// AgentConfig holds the agent related configuration
type AgentConfig struct {
	Auth AuthConfig `yaml:"auth"`
}

// AuthConfig holds the login credentials and the permissions granted to that user.
// PassHash, when set, is a bcrypt hash and takes precedence over Pass.
type AuthConfig struct {
	User        string   `yaml:"user"`
	Pass        string   `yaml:"pass"`
	PassHash    string   `yaml:"pass_hash"`
	Permissions []string `yaml:"permissions"`
}

// UptimeConfig tunes the uptime source strategies
type UptimeConfig struct {
	ProcPath       string   `yaml:"proc_path"`
	CommandPaths   []string `yaml:"command_paths"`
	CommandTimeout int      `yaml:"command_timeout"` // seconds
	MaxPlausible   int      `yaml:"max_plausible_days"`
	// OverrideFile, when set, is read before the standard sources. It holds
	// the uptime in seconds as its first field, like /proc/uptime.
	OverrideFile   string   `yaml:"override_file"`
}

// PluginConfig is the persisted settings block, keyed the same way the
// settings API expects it: plugins.uptime.*
type PluginConfig struct {
	Uptime UptimeSettings `yaml:"uptime"`
}

// UptimeSettings holds the user-editable settings
type UptimeSettings struct {
	Debug                bool   `yaml:"debug" json:"debug"`
	NavbarEnabled        bool   `yaml:"navbar_enabled" json:"navbar_enabled"`
	DisplayFormat        string `yaml:"display_format" json:"display_format"`
	DebugThrottleSeconds int    `yaml:"debug_throttle_seconds" json:"debug_throttle_seconds"`
	PollIntervalSeconds  int    `yaml:"poll_interval_seconds" json:"poll_interval_seconds"`
	ProcessUptimeEnabled bool   `yaml:"process_uptime_enabled" json:"process_uptime_enabled"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stdout   bool   `yaml:"stdout"`
}

// LoadConfig loads the configuration from the specified file path.
// Values missing from the file keep their defaults.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path.
// The file is written to a temporary sibling first and renamed into place.
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set config file mode: %w", err)
	}

	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}

// DefaultUptimeSettings returns the settings a fresh installation starts with
func DefaultUptimeSettings() UptimeSettings {
	return UptimeSettings{
		Debug:                false,
		NavbarEnabled:        true,
		DisplayFormat:        "full",
		DebugThrottleSeconds: 60,
		PollIntervalSeconds:  5,
		ProcessUptimeEnabled: true,
	}
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "OctoUptime",
		Server: ServerConfig{
			Port:   5001,
			Host:   "0.0.0.0",
		},
		Agent: AgentConfig{
			Auth: AuthConfig{
				User:        "admin",
				Permissions: []string{"SYSTEM", "SETTINGS"},
			},
		},
		Uptime: UptimeConfig{
			ProcPath:       "/proc/uptime",
			CommandPaths:   []string{"/usr/bin/uptime", "/bin/uptime"},
			CommandTimeout: 5,
			MaxPlausible:   10 * 365,
		},
		Plugin: PluginConfig{
			Uptime: DefaultUptimeSettings(),
		},
		Logs: LogsConfig{
			Enabled:  true,
			Level:    "info",
			FilePath: "logs",
			Format:   "json",
			Stdout:   true,
		},
	}
}
