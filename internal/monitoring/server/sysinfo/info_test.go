package sysinfo

import (
	"OctoUptime/internal/monitoring/uptime"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHost(t *testing.T, stat *host.InfoStat, err error) {
	t.Helper()
	origHost, origIfaces, origNow := hostInfo, interfaces, now
	t.Cleanup(func() { hostInfo, interfaces, now = origHost, origIfaces, origNow })

	hostInfo = func(context.Context) (*host.InfoStat, error) { return stat, err }
	interfaces = func() ([]net.Interface, error) { return nil, nil }
	now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
}

func constant(secs float64) uptime.Strategy {
	return uptime.StrategyFunc{Tag: uptime.SourceProc, Fn: func(context.Context) (float64, error) { return secs, nil }}
}

func TestGetSystemInfo(t *testing.T) {
	stubHost(t, &host.InfoStat{Hostname: "printer", OS: "linux", Procs: 42, KernelVersion: "6.1.0"}, nil)

	resolver := uptime.NewResolverWithStrategies(constant(90061), nil, nil)
	info, err := GetSystemInfo(context.Background(), resolver, "unknown")
	require.NoError(t, err)

	assert.Equal(t, "1d 1h 1m 1s", info.Uptime)
	require.NotNil(t, info.UptimeSeconds)
	assert.Equal(t, 90061.0, *info.UptimeSeconds)
	assert.Equal(t, uptime.SourceProc, info.UptimeSource)
	assert.Equal(t, "2023-12-31T22:58:59Z", info.BootTime)
	assert.Equal(t, "printer", info.Hostname)
	assert.Equal(t, 42, info.ProcessCount)
	assert.Empty(t, info.IPAddresses)
}

func TestGetSystemInfoUnknownUptime(t *testing.T) {
	stubHost(t, &host.InfoStat{Hostname: "printer"}, nil)

	info, err := GetSystemInfo(context.Background(), uptime.NewResolverWithStrategies(nil, nil, nil), "unbekannt")
	require.NoError(t, err)
	assert.Equal(t, "unbekannt", info.Uptime)
	assert.Nil(t, info.UptimeSeconds)
	assert.Empty(t, info.BootTime)
	assert.Equal(t, uptime.SourceNone, info.UptimeSource)
}

func TestGetSystemInfoHostError(t *testing.T) {
	stubHost(t, nil, errors.New("no host"))

	_, err := GetSystemInfo(context.Background(), uptime.NewResolverWithStrategies(constant(1), nil, nil), "unknown")
	assert.Error(t, err)
}
