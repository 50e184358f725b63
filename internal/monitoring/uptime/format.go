package uptime

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidDuration is returned when a negative or non-finite number of
// seconds is passed to Render
var ErrInvalidDuration = errors.New("uptime: duration must be a finite, non-negative number of seconds")

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// DisplayFormat selects which granularity the navbar shows
type DisplayFormat string

const (
	FormatFullDisplay DisplayFormat = "full"
	FormatDHMDisplay  DisplayFormat = "dhm"
	FormatDHDisplay   DisplayFormat = "dh"
	FormatDDisplay    DisplayFormat = "d"
)

// Valid reports whether f is one of the known display formats
func (f DisplayFormat) Valid() bool {
	switch f {
	case FormatFullDisplay, FormatDHMDisplay, FormatDHDisplay, FormatDDisplay:
		return true
	}
	return false
}

// Formatted holds one duration rendered in every supported granularity
type Formatted struct {
	Full string `json:"uptime"`
	DHM  string `json:"uptime_dhm"`
	DH   string `json:"uptime_dh"`
	D    string `json:"uptime_d"`
}

// Select returns the rendering for the display format, falling back to Full
func (f Formatted) Select(format DisplayFormat) string {
	switch format {
	case FormatDHMDisplay:
		return f.DHM
	case FormatDHDisplay:
		return f.DH
	case FormatDDisplay:
		return f.D
	default:
		return f.Full
	}
}

// Render truncates seconds to whole seconds and formats it in all granularities
func Render(seconds float64) (Formatted, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return Formatted{}, fmt.Errorf("%w: %v", ErrInvalidDuration, seconds)
	}

	s := uint64(seconds)
	return Formatted{
		Full: FormatFull(s),
		DHM:  FormatDHM(s),
		DH:   FormatDH(s),
		D:    FormatD(s),
	}, nil
}

func split(seconds uint64) (days, hours, minutes, secs uint64) {
	days = seconds / secondsPerDay
	hours = (seconds % secondsPerDay) / secondsPerHour
	minutes = (seconds % secondsPerHour) / secondsPerMinute
	secs = seconds % secondsPerMinute
	return
}

// FormatFull renders e.g. "1d 1h 1m 1s". Leading zero units are omitted and
// once a unit is shown the smaller units follow it, except that a zero seconds
// part is dropped after a larger unit: "0s" only ever appears on its own.
func FormatFull(seconds uint64) string {
	days, hours, minutes, secs := split(seconds)

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}

	return strings.Join(parts, " ")
}

// FormatDHM renders "{d}d {h}h {m}m", dropping days when zero
func FormatDHM(seconds uint64) string {
	days, hours, minutes, _ := split(seconds)
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatDH renders "{d}d {h}h", dropping days when zero
func FormatDH(seconds uint64) string {
	days, hours, _, _ := split(seconds)
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatD renders whole days only
func FormatD(seconds uint64) string {
	return fmt.Sprintf("%dd", seconds/secondsPerDay)
}
