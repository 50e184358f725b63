package uptime

import (
	"context"
	"errors"
	"time"
)

// Source identifies which strategy produced an uptime reading
type Source string

const (
	SourceProc    Source = "proc"    // kernel uptime file
	SourcePsutil  Source = "psutil"  // boot time from gopsutil
	SourceCommand Source = "command" // `uptime -s`
	SourceCustom  Source = "custom"  // caller supplied override
	SourceNone    Source = "none"    // every strategy failed
)

// DefaultMaxPlausible bounds readings derived from a boot timestamp.
// Anything at or above it is treated as clock skew or garbage.
const DefaultMaxPlausible = 10 * 365 * 24 * time.Hour

var (
	// ErrImplausible is returned when a computed uptime is negative or too large
	ErrImplausible = errors.New("implausible uptime value")
	// ErrUnsupported is returned by strategies that cannot run on this platform
	ErrUnsupported = errors.New("strategy not supported on this platform")
)

// Reading is the result of a resolution. Seconds is only meaningful when Available is set.
type Reading struct {
	Seconds   float64 `json:"seconds"`
	Source    Source  `json:"source"`
	Available bool    `json:"available"`
}

// Strategy is a single way of obtaining the system uptime in seconds
type Strategy interface {
	Source() Source
	Seconds(ctx context.Context) (float64, error)
}

// StrategyFunc adapts a function to the Strategy interface
type StrategyFunc struct {
	Tag Source
	Fn  func(ctx context.Context) (float64, error)
}

// Source returns the tag of the strategy
func (s StrategyFunc) Source() Source { return s.Tag }

// Seconds calls the wrapped function
func (s StrategyFunc) Seconds(ctx context.Context) (float64, error) { return s.Fn(ctx) }

func plausible(seconds float64, max time.Duration) error {
	if seconds < 0 || seconds >= max.Seconds() {
		return ErrImplausible
	}
	return nil
}
