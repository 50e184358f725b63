package uptime

import (
	"OctoUptime/internal/pkg/config"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(src Source, secs float64) Strategy {
	return StrategyFunc{Tag: src, Fn: func(context.Context) (float64, error) { return secs, nil }}
}

func failing(src Source) Strategy {
	return StrategyFunc{Tag: src, Fn: func(context.Context) (float64, error) { return 0, errors.New("boom") }}
}

func TestResolverPrefersProc(t *testing.T) {
	r := NewResolverWithStrategies(fixed(SourceProc, 10), fixed(SourcePsutil, 20), fixed(SourceCommand, 30))

	got := r.Resolve(context.Background())
	assert.Equal(t, Reading{Seconds: 10, Source: SourceProc, Available: true}, got)
	assert.Equal(t, SourceProc, r.LastSource())
}

func TestResolverFallsThrough(t *testing.T) {
	r := NewResolverWithStrategies(failing(SourceProc), fixed(SourcePsutil, 123), fixed(SourceCommand, 30))
	got := r.Resolve(context.Background())
	assert.Equal(t, SourcePsutil, got.Source)
	assert.Equal(t, 123.0, got.Seconds)

	r = NewResolverWithStrategies(failing(SourceProc), failing(SourcePsutil), fixed(SourceCommand, 30))
	got = r.Resolve(context.Background())
	assert.Equal(t, SourceCommand, got.Source)
}

func TestResolverTotalFailure(t *testing.T) {
	panicking := StrategyFunc{Tag: SourceCommand, Fn: func(context.Context) (float64, error) {
		panic("unexpected")
	}}
	r := NewResolverWithStrategies(failing(SourceProc), nil, panicking)

	var got Reading
	require.NotPanics(t, func() { got = r.Resolve(context.Background()) })
	assert.Equal(t, Reading{Source: SourceNone}, got)
	assert.Equal(t, SourceNone, r.LastSource())
}

func TestResolverOverride(t *testing.T) {
	r := NewResolverWithStrategies(fixed(SourceProc, 10), nil, nil)

	r.SetOverride(func(context.Context) (float64, error) { return 200, nil })
	got := r.Resolve(context.Background())
	assert.Equal(t, Reading{Seconds: 200, Source: SourceCustom, Available: true}, got)

	r.SetOverride(func(context.Context) (float64, error) { return 0, errors.New("no") })
	assert.Equal(t, SourceProc, r.Resolve(context.Background()).Source)

	r.SetOverride(nil)
	assert.Equal(t, SourceProc, r.Resolve(context.Background()).Source)
}

func TestNewResolverOverrideFile(t *testing.T) {
	dir := t.TempDir()
	procPath := filepath.Join(dir, "uptime")
	overridePath := filepath.Join(dir, "host_uptime")
	require.NoError(t, os.WriteFile(procPath, []byte("10.00 5.00\n"), 0o644))
	require.NoError(t, os.WriteFile(overridePath, []byte("42.5\n"), 0o644))

	cfg := config.GetDefaultConfig().Uptime
	cfg.ProcPath = procPath
	cfg.OverrideFile = overridePath
	r := NewResolver(cfg)

	assert.Equal(t, Reading{Seconds: 42.5, Source: SourceCustom, Available: true}, r.Resolve(context.Background()))
	assert.Equal(t, SourceCustom, r.LastSource())

	require.NoError(t, os.Remove(overridePath))
	got := r.Resolve(context.Background())
	assert.Equal(t, SourceProc, got.Source)
	assert.Equal(t, 10.0, got.Seconds)
}

func TestProcReader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uptime")
	require.NoError(t, os.WriteFile(path, []byte("987.65 0.00\n"), 0o644))

	secs, err := NewProcReader(path).Seconds(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 987.65, secs, 0.001)

	for name, content := range map[string]string{
		"empty":    "",
		"garbage":  "abc 1.0\n",
		"negative": "-5 1.0\n",
	} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
			_, err := NewProcReader(p).Seconds(context.Background())
			assert.Error(t, err)
		})
	}

	_, err = NewProcReader(filepath.Join(dir, "missing")).Seconds(context.Background())
	assert.Error(t, err)
}

func TestBootTimeReader(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	r := &BootTimeReader{
		BootTime: func(context.Context) (uint64, error) { return uint64(now.Unix() - 1234), nil },
		Now:      func() time.Time { return now },
		Max:      DefaultMaxPlausible,
	}

	secs, err := r.Seconds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1234.0, secs)

	// boot time in the future
	r.BootTime = func(context.Context) (uint64, error) { return uint64(now.Unix() + 60), nil }
	_, err = r.Seconds(context.Background())
	assert.ErrorIs(t, err, ErrImplausible)

	// epoch boot time means more than ten years of uptime
	r.BootTime = func(context.Context) (uint64, error) { return 0, nil }
	_, err = r.Seconds(context.Background())
	assert.ErrorIs(t, err, ErrImplausible)

	r.BootTime = func(context.Context) (uint64, error) { return 0, errors.New("unsupported") }
	_, err = r.Seconds(context.Background())
	assert.Error(t, err)
}

func TestProcessReader(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	r := &ProcessReader{
		Pid:        42,
		CreateTime: func(context.Context, int32) (int64, error) { return now.Add(-90 * time.Second).UnixMilli(), nil },
		Now:        func() time.Time { return now },
		Max:        DefaultMaxPlausible,
	}
	got := r.Read(context.Background())
	assert.True(t, got.Available)
	assert.Equal(t, SourcePsutil, got.Source)
	assert.InDelta(t, 90, got.Seconds, 0.001)

	r.CreateTime = func(context.Context, int32) (int64, error) { return 0, errors.New("gone") }
	assert.Equal(t, Reading{Source: SourceNone}, r.Read(context.Background()))
}

func TestProcessReaderCurrentProcess(t *testing.T) {
	got := NewProcessReader().Read(context.Background())
	if !got.Available {
		t.Skip("process create time not available on this platform")
	}
	assert.GreaterOrEqual(t, got.Seconds, 0.0)
}
