package settings

import (
	"OctoUptime/internal/monitoring/uptime"
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"errors"
	"fmt"
	"sync"
)

// Settings is the user-editable uptime settings record
type Settings = config.UptimeSettings

// ErrInvalidSetting is returned by Save when a non-integer key has the wrong type or value
var ErrInvalidSetting = errors.New("invalid setting")

// Store owns the current settings and persists them in the config file
type Store struct {
	mu          sync.RWMutex
	cfg         *config.Config
	path        string
	subscribers []func(prev, next Settings)
}

// NewStore wraps cfg. path is the config file Save writes to and Reload reads
// from; an empty path keeps everything in memory. Out-of-range values in cfg
// are repaired before they are served.
func NewStore(cfg *config.Config, path string) *Store {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	repair(&cfg.Plugin.Uptime)
	s := &Store{cfg: cfg, path: path}
	logger.SetDebug(cfg.Plugin.Uptime.Debug)
	return s
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Plugin.Uptime
}

// Subscribe registers fn to be called after every successful Save or Reload
func (s *Store) Subscribe(fn func(prev, next Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Save sanitizes data, merges the keys found in data["plugins"]["uptime"]
// into the current settings and persists the result. Missing keys keep their
// current values. Nothing is changed when an error is returned.
func (s *Store) Save(data map[string]interface{}) (Settings, error) {
	Sanitize(data)

	logger.Debug("Settings save requested", logger.Any("data", data))

	s.mu.Lock()
	prev := s.cfg.Plugin.Uptime
	next := prev

	if block := settingsBlock(data); block != nil {
		if err := merge(&next, block); err != nil {
			s.mu.Unlock()
			return prev, err
		}
	}

	if s.path != "" {
		updated := *s.cfg
		updated.Plugin.Uptime = next
		if err := config.SaveConfig(&updated, s.path); err != nil {
			s.mu.Unlock()
			return prev, err
		}
	}
	s.cfg.Plugin.Uptime = next
	subs := append([]func(prev, next Settings){}, s.subscribers...)
	s.mu.Unlock()

	s.applied(prev, next, subs)
	return next, nil
}

// Reload re-reads the settings block from the config file
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	cfg, err := config.LoadConfig(s.path)
	if err != nil {
		return err
	}

	next := cfg.Plugin.Uptime
	repair(&next)

	s.mu.Lock()
	prev := s.cfg.Plugin.Uptime
	s.cfg.Plugin.Uptime = next
	subs := append([]func(prev, next Settings){}, s.subscribers...)
	s.mu.Unlock()

	if prev == next {
		return nil
	}
	s.applied(prev, next, subs)
	return nil
}

func (s *Store) applied(prev, next Settings, subs []func(prev, next Settings)) {
	logger.SetDebug(next.Debug)

	logger.Info("Settings after save",
		logger.Bool("debug", next.Debug),
		logger.Bool("navbar_enabled", next.NavbarEnabled),
		logger.String("display_format", next.DisplayFormat),
		logger.Int("debug_throttle_seconds", next.DebugThrottleSeconds),
		logger.Int("poll_interval_seconds", next.PollIntervalSeconds))

	if prev.NavbarEnabled != next.NavbarEnabled {
		logger.Info("Navbar display changed",
			logger.Bool("from", prev.NavbarEnabled),
			logger.Bool("to", next.NavbarEnabled))
	}

	for _, fn := range subs {
		fn(prev, next)
	}
}

func settingsBlock(data map[string]interface{}) map[string]interface{} {
	plugins, ok := data[PluginsKey].(map[string]interface{})
	if !ok {
		return nil
	}
	block, _ := plugins[BlockKey].(map[string]interface{})
	return block
}

func merge(dst *Settings, block map[string]interface{}) error {
	for key, raw := range block {
		var err error
		switch key {
		case KeyDebug:
			err = setBool(&dst.Debug, key, raw)
		case KeyNavbarEnabled:
			err = setBool(&dst.NavbarEnabled, key, raw)
		case KeyProcessUptimeEnabled:
			err = setBool(&dst.ProcessUptimeEnabled, key, raw)
		case KeyDisplayFormat:
			v, ok := raw.(string)
			if !ok || !uptime.DisplayFormat(v).Valid() {
				err = fmt.Errorf("%w: %s must be one of full, dhm, dh, d", ErrInvalidSetting, key)
				break
			}
			dst.DisplayFormat = v
		case KeyDebugThrottleSeconds:
			dst.DebugThrottleSeconds = raw.(int)
		case KeyPollIntervalSeconds:
			dst.PollIntervalSeconds = raw.(int)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func setBool(dst *bool, key string, raw interface{}) error {
	v, ok := raw.(bool)
	if !ok {
		return fmt.Errorf("%w: %s must be a boolean", ErrInvalidSetting, key)
	}
	*dst = v
	return nil
}

// repair clamps the integer settings and replaces an unknown display format
// with the default, the way stored settings are read back
func repair(s *Settings) {
	if v := clamp(s.DebugThrottleSeconds); v != s.DebugThrottleSeconds {
		logger.Warn("Clamped stored setting",
			logger.String("key", KeyDebugThrottleSeconds),
			logger.Int("from", s.DebugThrottleSeconds),
			logger.Int("to", v))
		s.DebugThrottleSeconds = v
	}
	if v := clamp(s.PollIntervalSeconds); v != s.PollIntervalSeconds {
		logger.Warn("Clamped stored setting",
			logger.String("key", KeyPollIntervalSeconds),
			logger.Int("from", s.PollIntervalSeconds),
			logger.Int("to", v))
		s.PollIntervalSeconds = v
	}
	if !uptime.DisplayFormat(s.DisplayFormat).Valid() {
		def := config.DefaultUptimeSettings().DisplayFormat
		logger.Warn("Unknown display format in stored settings, using default",
			logger.String("display_format", s.DisplayFormat),
			logger.String("default", def))
		s.DisplayFormat = def
	}
}
