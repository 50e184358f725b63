package uptime

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/host"
)

// BootTimeReader derives the uptime from the boot timestamp reported by gopsutil
type BootTimeReader struct {
	BootTime func(ctx context.Context) (uint64, error)
	Now      func() time.Time
	Max      time.Duration
}

// NewBootTimeReader creates a reader backed by host.BootTimeWithContext
func NewBootTimeReader(max time.Duration) *BootTimeReader {
	if max <= 0 {
		max = DefaultMaxPlausible
	}
	return &BootTimeReader{
		BootTime: host.BootTimeWithContext,
		Now:      time.Now,
		Max:      max,
	}
}

// Source implements Strategy
func (r *BootTimeReader) Source() Source { return SourcePsutil }

// Seconds implements Strategy
func (r *BootTimeReader) Seconds(ctx context.Context) (float64, error) {
	boot, err := r.BootTime(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get boot time: %w", err)
	}

	secs := r.Now().Sub(time.Unix(int64(boot), 0)).Seconds()
	if err := plausible(secs, r.Max); err != nil {
		return 0, fmt.Errorf("boot time %d: %w", boot, err)
	}

	return secs, nil
}
