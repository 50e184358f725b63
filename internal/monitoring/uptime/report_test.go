package uptime

import (
	"OctoUptime/internal/pkg/config"
	"OctoUptime/internal/websocket"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessages = Messages{Unknown: "unknown", Note: "Uptime could not be determined on this host."}

func TestReportAvailable(t *testing.T) {
	r := NewReporter(NewResolverWithStrategies(fixed(SourceProc, 90061.5), nil, nil), nil)

	p := r.Build(context.Background(), config.DefaultUptimeSettings(), testMessages)

	assert.True(t, p.UptimeAvailable)
	assert.Equal(t, SourceProc, p.UptimeSource)
	assert.Equal(t, "1d 1h 1m 1s", p.Full)
	assert.Equal(t, "1d 1h 1m", p.DHM)
	assert.Equal(t, "1d 1h", p.DH)
	assert.Equal(t, "1d", p.D)
	require.NotNil(t, p.Seconds)
	assert.Equal(t, 90061.5, *p.Seconds)
	assert.Empty(t, p.UptimeNote)
	assert.Equal(t, "full", p.DisplayFormat)
	assert.Equal(t, 5, p.PollIntervalSeconds)
	assert.True(t, p.NavbarEnabled)
}

func TestReportUnavailable(t *testing.T) {
	r := NewReporter(NewResolverWithStrategies(failing(SourceProc), failing(SourcePsutil), failing(SourceCommand)), nil)

	p := r.Build(context.Background(), config.DefaultUptimeSettings(), testMessages)

	assert.False(t, p.UptimeAvailable)
	assert.Equal(t, SourceNone, p.UptimeSource)
	assert.Nil(t, p.Seconds)
	assert.Equal(t, Formatted{Full: "unknown", DHM: "unknown", DH: "unknown", D: "unknown"}, p.Formatted)
	assert.Equal(t, testMessages.Note, p.UptimeNote)

	body, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "seconds")
	assert.Nil(t, raw["seconds"])
	assert.Equal(t, "unknown", raw["uptime"])
	assert.Equal(t, "none", raw["uptime_source"])
}

func TestReportNormalizesOutOfRangeSettings(t *testing.T) {
	r := NewReporter(NewResolverWithStrategies(fixed(SourceProc, 1), nil, nil), nil)

	s := config.DefaultUptimeSettings()
	s.DisplayFormat = "weeks"
	s.PollIntervalSeconds = 500

	p := r.Build(context.Background(), s, testMessages)
	assert.Equal(t, "full", p.DisplayFormat)
	assert.Equal(t, 5, p.PollIntervalSeconds)

	s.DisplayFormat = "dh"
	s.PollIntervalSeconds = 120
	p = r.Build(context.Background(), s, testMessages)
	assert.Equal(t, "dh", p.DisplayFormat)
	assert.Equal(t, 120, p.PollIntervalSeconds)
}

func TestReportProcessUptime(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	proc := &ProcessReader{
		Pid:        1,
		CreateTime: func(context.Context, int32) (int64, error) { return now.Add(-61 * time.Second).UnixMilli(), nil },
		Now:        func() time.Time { return now },
		Max:        DefaultMaxPlausible,
	}
	r := NewReporter(NewResolverWithStrategies(fixed(SourceProc, 10), nil, nil), proc)

	s := config.DefaultUptimeSettings()
	p := r.Build(context.Background(), s, testMessages)
	require.NotNil(t, p.ProcessPayload)
	assert.True(t, p.ProcessUptimeAvailable)
	assert.Equal(t, "1m 1s", p.ProcessUptime)
	require.NotNil(t, p.ProcessSeconds)
	assert.InDelta(t, 61, *p.ProcessSeconds, 0.001)

	proc.CreateTime = func(context.Context, int32) (int64, error) { return 0, errors.New("gone") }
	p = r.Build(context.Background(), s, testMessages)
	require.NotNil(t, p.ProcessPayload)
	assert.False(t, p.ProcessUptimeAvailable)
	assert.Equal(t, "unknown", p.ProcessUptime)
	assert.Nil(t, p.ProcessSeconds)
	assert.True(t, p.UptimeAvailable, "system uptime is unaffected")

	s.ProcessUptimeEnabled = false
	p = r.Build(context.Background(), s, testMessages)
	assert.Nil(t, p.ProcessPayload)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "process_uptime")
}

func TestMonitorPushStoresLastInfo(t *testing.T) {
	r := NewReporter(NewResolverWithStrategies(fixed(SourceProc, 3601), nil, nil), nil)
	m := NewMonitor(r, config.DefaultUptimeSettings, testMessages, nil)

	assert.Nil(t, m.LastInfo())
	m.Push()
	require.NotNil(t, m.LastInfo())
	assert.Equal(t, "1h 0m 1s", m.LastInfo().Full)

	require.NoError(t, m.StartMonitoring())
	assert.Error(t, m.StartMonitoring())
	m.StopMonitoring()
	m.StopMonitoring()
}

func TestMonitorGreetRespectsNavbarFlag(t *testing.T) {
	r := NewReporter(NewResolverWithStrategies(fixed(SourceProc, 61), nil, nil), nil)
	s := config.DefaultUptimeSettings()
	m := NewMonitor(r, func() config.UptimeSettings { return s }, testMessages, websocket.NewRegistry())

	var sent [][]byte
	send := func(msg []byte) error {
		sent = append(sent, msg)
		return nil
	}

	m.greet(context.Background(), send)
	require.Len(t, sent, 1)

	var env struct {
		Channel string  `json:"channel"`
		Data    Payload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(sent[0], &env))
	assert.Equal(t, "uptime", env.Channel)
	assert.Equal(t, "1m 1s", env.Data.Full)
	assert.Nil(t, m.LastInfo(), "a greeting is not a broadcast")

	s.NavbarEnabled = false
	m.greet(context.Background(), send)
	assert.Len(t, sent, 1)
}
