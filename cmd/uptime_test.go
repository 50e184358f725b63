package cmd

import (
	"OctoUptime/internal/pkg/config"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUptimeFlags(t *testing.T, path, format string, asJSON bool) {
	t.Helper()
	prevPath, prevFormat, prevJSON, prevLang := configPath, uptimeFormat, uptimeJSON, uptimeLang
	t.Cleanup(func() { configPath, uptimeFormat, uptimeJSON, uptimeLang = prevPath, prevFormat, prevJSON, prevLang })
	configPath, uptimeFormat, uptimeJSON, uptimeLang = path, format, asJSON, ""
}

func writeConfig(t *testing.T, uptimeFile string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uptime"), []byte(uptimeFile), 0o644))

	cfg := config.GetDefaultConfig()
	cfg.Uptime.ProcPath = filepath.Join(dir, "uptime")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.SaveConfig(cfg, path))
	return path
}

func TestPrintUptime(t *testing.T) {
	withUptimeFlags(t, writeConfig(t, "90061.25 1.00\n"), "dh", false)

	var out bytes.Buffer
	require.NoError(t, printUptime(context.Background(), &out))
	assert.Equal(t, "1d 1h (source: proc)\n", out.String())
}

func TestPrintUptimeJSON(t *testing.T) {
	withUptimeFlags(t, writeConfig(t, "61 1.00\n"), "", true)

	var out bytes.Buffer
	require.NoError(t, printUptime(context.Background(), &out))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "1m 1s", payload["uptime"])
	assert.Equal(t, 61.0, payload["seconds"])
}

func TestPrintUptimeRejectsUnknownFormat(t *testing.T) {
	withUptimeFlags(t, writeConfig(t, "61 1.00\n"), "weeks", false)
	assert.Error(t, printUptime(context.Background(), &bytes.Buffer{}))
}
