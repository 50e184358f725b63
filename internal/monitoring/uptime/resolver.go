package uptime

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/pkg/logger"
	"context"
	"fmt"
	"sync"
	"time"
)

// Resolver answers "how long has the system been up". The strategies are
// tried in a fixed order: kernel file, gopsutil boot time, uptime command.
// The first plausible answer wins; failures only move on to the next one.
type Resolver struct {
	proc     Strategy
	bootTime Strategy
	command  Strategy

	mu       sync.RWMutex
	override Strategy
	last     Source
}

// NewResolver builds the standard strategy chain from configuration
func NewResolver(cfg config.UptimeConfig) *Resolver {
	max := time.Duration(cfg.MaxPlausible) * 24 * time.Hour
	timeout := time.Duration(cfg.CommandTimeout) * time.Second

	r := NewResolverWithStrategies(
		NewProcReader(cfg.ProcPath),
		NewBootTimeReader(max),
		NewCommandRunner(cfg.CommandPaths, timeout, max),
	)
	if cfg.OverrideFile != "" {
		r.SetOverride(NewProcReader(cfg.OverrideFile).Seconds)
	}
	return r
}

// NewResolverWithStrategies builds a resolver from explicit strategies.
// A nil strategy counts as a failing one.
func NewResolverWithStrategies(proc, bootTime, command Strategy) *Resolver {
	return &Resolver{
		proc:     proc,
		bootTime: bootTime,
		command:  command,
		last:     SourceNone,
	}
}

// SetOverride installs a custom uptime source that is consulted before the
// standard chain. Passing nil removes it.
func (r *Resolver) SetOverride(fn func(ctx context.Context) (float64, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		r.override = nil
		return
	}
	r.override = StrategyFunc{Tag: SourceCustom, Fn: fn}
}

// LastSource returns the source of the most recent resolution
func (r *Resolver) LastSource() Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// Resolve returns the first successful reading. It never fails: when no
// strategy answers the reading is unavailable and tagged SourceNone.
func (r *Resolver) Resolve(ctx context.Context) Reading {
	r.mu.RLock()
	override := r.override
	r.mu.RUnlock()

	reading := Reading{Source: SourceNone}
	for _, s := range []Strategy{override, r.proc, r.bootTime, r.command} {
		if s == nil {
			continue
		}
		secs, err := try(ctx, s)
		if err != nil {
			logger.Debug("Uptime strategy failed",
				logger.String("source", string(s.Source())),
				logger.Err(err))
			continue
		}
		reading = Reading{Seconds: secs, Source: s.Source(), Available: true}
		break
	}

	r.mu.Lock()
	r.last = reading.Source
	r.mu.Unlock()

	return reading
}

// try runs one strategy, turning a panic into an error
func try(ctx context.Context, s Strategy) (secs float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("strategy %s panicked: %v", s.Source(), p)
		}
	}()
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.Seconds(ctx)
}
