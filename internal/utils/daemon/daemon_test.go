package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIDFileLifecycle(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "run", "octo_uptime.pid")

	assert.False(t, IsRunning(pidFile))
	running, _ := GetStatus(pidFile)
	assert.False(t, running)

	require.NoError(t, WritePIDFile(pidFile))
	assert.True(t, IsRunning(pidFile))

	running, pid := GetStatus(pidFile)
	assert.True(t, running)
	assert.Equal(t, os.Getpid(), pid)

	RemovePIDFile(pidFile)
	assert.NoFileExists(t, pidFile)
}

func TestStaleAndInvalidPIDFiles(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.pid")
	require.NoError(t, os.WriteFile(garbage, []byte("not-a-pid"), 0o644))
	assert.False(t, IsRunning(garbage))
	_, err := StopProcess(garbage)
	assert.Error(t, err)

	_, err = StopProcess(filepath.Join(dir, "missing.pid"))
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestChildArgsForwardFlags(t *testing.T) {
	assert.Equal(t,
		[]string{"start", "--config", "conf/config.yaml", "--pid-file", "/tmp/x.pid"},
		childArgs("conf/config.yaml", "/tmp/x.pid"))
	assert.Equal(t, []string{"start", "--pid-file", "/tmp/x.pid"}, childArgs("", "/tmp/x.pid"))
	assert.Equal(t, []string{"start"}, childArgs("", ""))
}
