package daemon

import (
	"OctoUptime/internal/pkg/logger"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// EnvDaemon marks the re-executed child process
const EnvDaemon = "OCTO_UPTIME_DAEMON"

// ErrNotRunning is returned when no live process owns the PID file
var ErrNotRunning = errors.New("service is not running")

// IsChild reports whether this process was started by Daemonize
func IsChild() bool {
	return os.Getenv(EnvDaemon) == "1"
}

// readPID returns the PID stored in pidFile
func readPID(pidFile string) (int, error) {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w (PID file not found)", ErrNotRunning)
		}
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid PID in file %s", pidFile)
	}
	return pid, nil
}

// alive checks a PID with signal 0; FindProcess always succeeds on Unix
func alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// IsRunning checks if the service is already running
func IsRunning(pidFile string) bool {
	pid, err := readPID(pidFile)
	if err != nil {
		if !errors.Is(err, ErrNotRunning) {
			logger.Error("Failed to read PID file",
				logger.Err(err),
				logger.String("file", pidFile))
		}
		return false
	}
	return alive(pid)
}

// Daemonize re-executes the binary detached from the terminal and exits the parent
func Daemonize(configPath, pidFile string) {
	executable, err := os.Executable()
	if err != nil {
		logger.Fatal("Failed to get executable path", logger.Err(err))
	}

	cmd := exec.Command(executable, childArgs(configPath, pidFile)...)
	cmd.Env = append(os.Environ(), EnvDaemon+"=1")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		logger.Fatal("Failed to start daemon process", logger.Err(err))
	}

	logger.Info("Started daemon process",
		logger.Int("pid", cmd.Process.Pid),
		logger.String("pid_file", pidFile))

	os.Exit(0)
}

// childArgs builds the command line of the re-executed child so it uses the
// same config and PID file as the parent
func childArgs(configPath, pidFile string) []string {
	args := []string{"start"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	if pidFile != "" {
		args = append(args, "--pid-file", pidFile)
	}
	return args
}

// WritePIDFile writes the current process ID to the specified file
func WritePIDFile(pidFile string) error {
	pid := os.Getpid()

	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return fmt.Errorf("failed to create directory for PID file: %w", err)
	}

	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	logger.Info("Wrote PID to file",
		logger.Int("pid", pid),
		logger.String("file", pidFile))
	return nil
}

// RemovePIDFile removes the PID file during shutdown
func RemovePIDFile(pidFile string) {
	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove PID file during shutdown",
			logger.Err(err),
			logger.String("file", pidFile))
		return
	}
	logger.Info("Removed PID file during shutdown", logger.String("file", pidFile))
}

// StopProcess sends SIGTERM to the process in pidFile and removes the file
func StopProcess(pidFile string) (int, error) {
	pid, err := readPID(pidFile)
	if err != nil {
		return 0, err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return 0, fmt.Errorf("failed to send terminate signal: %w", err)
	}

	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove PID file after stopping process",
			logger.Err(err),
			logger.String("file", pidFile))
	}

	return pid, nil
}

// GetStatus checks if the service is running and returns the PID. A stale
// PID file is removed.
func GetStatus(pidFile string) (bool, int) {
	pid, err := readPID(pidFile)
	if err != nil {
		if !errors.Is(err, ErrNotRunning) {
			logger.Error("Failed to read PID file",
				logger.Err(err),
				logger.String("file", pidFile))
		}
		return false, 0
	}

	if alive(pid) {
		return true, pid
	}

	os.Remove(pidFile)
	return false, 0
}
