package uptime

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessReader reports how long a process (by default this one) has been running
type ProcessReader struct {
	Pid        int32
	CreateTime func(ctx context.Context, pid int32) (int64, error) // milliseconds since epoch
	Now        func() time.Time
	Max        time.Duration
}

// NewProcessReader creates a reader for the current process
func NewProcessReader() *ProcessReader {
	return &ProcessReader{
		Pid:        int32(os.Getpid()),
		CreateTime: processCreateTime,
		Now:        time.Now,
		Max:        DefaultMaxPlausible,
	}
}

func processCreateTime(ctx context.Context, pid int32) (int64, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return 0, err
	}
	return p.CreateTimeWithContext(ctx)
}

// Read never fails; an unavailable reading carries SourceNone
func (r *ProcessReader) Read(ctx context.Context) Reading {
	secs, err := try(ctx, StrategyFunc{Tag: SourcePsutil, Fn: r.seconds})
	if err != nil {
		return Reading{Source: SourceNone}
	}
	return Reading{Seconds: secs, Source: SourcePsutil, Available: true}
}

func (r *ProcessReader) seconds(ctx context.Context) (float64, error) {
	ms, err := r.CreateTime(ctx, r.Pid)
	if err != nil {
		return 0, fmt.Errorf("failed to get create time of pid %d: %w", r.Pid, err)
	}

	secs := r.Now().Sub(time.UnixMilli(ms)).Seconds()
	if err := plausible(secs, r.Max); err != nil {
		return 0, err
	}
	return secs, nil
}
