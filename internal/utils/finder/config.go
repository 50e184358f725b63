package finder

import (
	"fmt"
	"os"
	"path/filepath"
)

// SystemConfigPath is consulted when the requested file does not exist
const SystemConfigPath = "/etc/octo_uptime/config.yaml"

// FindConfigFile returns the absolute path of the configuration file. The
// given path is tried first, then conf/config.yaml next to the executable,
// then SystemConfigPath. When nothing exists and mustExist is false the
// given path is returned unchanged.
func FindConfigFile(configPath string, mustExist bool) (string, error) {
	for _, candidate := range candidates(configPath) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			absPath, err := filepath.Abs(candidate)
			if err != nil {
				return "", fmt.Errorf("failed to get absolute path: %w", err)
			}
			return absPath, nil
		}
	}

	if mustExist {
		return "", fmt.Errorf("configuration file not found: %s", configPath)
	}
	return configPath, nil
}

func candidates(configPath string) []string {
	paths := []string{configPath}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "conf", "config.yaml"))
	}
	return append(paths, SystemConfigPath)
}
