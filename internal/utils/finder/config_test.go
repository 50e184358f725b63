package finder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: test\n"), 0o644))

	got, err := FindConfigFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindConfigFileMissing(t *testing.T) {
	if _, err := os.Stat(SystemConfigPath); err == nil {
		t.Skip("system config present")
	}
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := FindConfigFile(missing, true)
	assert.Error(t, err)

	got, err := FindConfigFile(missing, false)
	require.NoError(t, err)
	assert.Equal(t, missing, got)
}

func TestDirectoryIsNotAConfigFile(t *testing.T) {
	if _, err := os.Stat(SystemConfigPath); err == nil {
		t.Skip("system config present")
	}
	_, err := FindConfigFile(t.TempDir(), true)
	assert.Error(t, err)
}
