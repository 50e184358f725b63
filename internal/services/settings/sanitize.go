package settings

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Keys of the settings block inside a save request
const (
	PluginsKey = "plugins"
	BlockKey   = "uptime"

	KeyDebug                = "debug"
	KeyNavbarEnabled        = "navbar_enabled"
	KeyDisplayFormat        = "display_format"
	KeyDebugThrottleSeconds = "debug_throttle_seconds"
	KeyPollIntervalSeconds  = "poll_interval_seconds"
	KeyProcessUptimeEnabled = "process_uptime_enabled"
)

// Bounds shared by both clamped integer settings
const (
	MinSeconds = 1
	MaxSeconds = 120
)

var clamped = []struct {
	key      string
	fallback int
}{
	{KeyDebugThrottleSeconds, 60},
	{KeyPollIntervalSeconds, 5},
}

var errNotInteger = errors.New("not an integer")

// Sanitize normalizes the integer settings inside data["plugins"]["uptime"].
// Keys present in the block are converted and clamped to [MinSeconds, MaxSeconds];
// nil or unconvertible values become the key's default. Absent keys stay absent.
// Anything that is not a nested map is left alone.
func Sanitize(data interface{}) {
	root, ok := data.(map[string]interface{})
	if !ok {
		return
	}
	plugins, ok := root[PluginsKey].(map[string]interface{})
	if !ok {
		return
	}
	block, ok := plugins[BlockKey].(map[string]interface{})
	if !ok {
		return
	}

	for _, c := range clamped {
		raw, present := block[c.key]
		if !present {
			continue
		}
		v, err := toInt(raw)
		if err != nil {
			v = c.fallback
		}
		block[c.key] = clamp(v)
	}
}

func clamp(v int) int {
	if v < MinSeconds {
		return MinSeconds
	}
	if v > MaxSeconds {
		return MaxSeconds
	}
	return v
}

// toInt converts the way a lenient integer cast would: bools count as 0/1,
// finite floats truncate toward zero, strings must hold a base-10 integer.
// Results outside the int range saturate, which clamp then bounds anyway.
func toInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errNotInteger
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return saturate(v), nil
	case uint:
		return saturateUint(uint64(v)), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return saturateUint(uint64(v)), nil
	case uint64:
		return saturateUint(v), nil
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return saturate(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, errNotInteger
		}
		return fromFloat(f)
	case string:
		return fromString(v)
	}
	return 0, errNotInteger
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotInteger
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	if f < math.MinInt32 {
		return math.MinInt32, nil
	}
	return int(f), nil
}

func fromString(s string) (int, error) {
	s = strings.TrimSpace(s)
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return saturate(i), nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt32, nil
		}
		return math.MaxInt32, nil
	}
	return 0, errNotInteger
}

func saturate(i int64) int {
	if i > math.MaxInt32 {
		return math.MaxInt32
	}
	if i < math.MinInt32 {
		return math.MinInt32
	}
	return int(i)
}

func saturateUint(u uint64) int {
	if u > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(u)
}
