package uptime

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ProcReader reads the first field of the kernel uptime file
type ProcReader struct {
	Path string
}

// NewProcReader creates a reader for path, defaulting to /proc/uptime
func NewProcReader(path string) *ProcReader {
	if path == "" {
		path = "/proc/uptime"
	}
	return &ProcReader{Path: path}
}

// Source implements Strategy
func (r *ProcReader) Source() Source { return SourceProc }

// Seconds implements Strategy
func (r *ProcReader) Seconds(_ context.Context) (float64, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", r.Path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid format in %s: no fields", r.Path)
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing uptime value: %w", err)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, fmt.Errorf("%w: %v", ErrImplausible, secs)
	}

	return secs, nil
}
