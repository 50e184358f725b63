package uptime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultCommandTimeout caps the runtime of the external uptime binary
const DefaultCommandTimeout = 5 * time.Second

// bootLayout is the format printed by `uptime -s`
const bootLayout = "2006-01-02 15:04:05"

// ErrNoExecutable is returned when none of the candidate paths passes vetting
var ErrNoExecutable = errors.New("no vetted uptime executable found")

// commandEnv is the complete environment the child process sees
var commandEnv = []string{"PATH=/usr/bin:/bin", "LC_ALL=C"}

// CommandRunner obtains the boot time from `uptime -s`. Only absolute
// candidate paths that are regular, executable, non-symlink files are run.
type CommandRunner struct {
	Paths    []string
	Timeout  time.Duration
	Now      func() time.Time
	Location *time.Location
	Max      time.Duration
}

// NewCommandRunner creates a runner for the given candidate paths
func NewCommandRunner(paths []string, timeout, max time.Duration) *CommandRunner {
	if len(paths) == 0 {
		paths = []string{"/usr/bin/uptime", "/bin/uptime"}
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	if max <= 0 {
		max = DefaultMaxPlausible
	}
	return &CommandRunner{
		Paths:    paths,
		Timeout:  timeout,
		Now:      time.Now,
		Location: time.Local,
		Max:      max,
	}
}

// Source implements Strategy
func (r *CommandRunner) Source() Source { return SourceCommand }

// Seconds implements Strategy
func (r *CommandRunner) Seconds(ctx context.Context) (float64, error) {
	path, err := r.executable()
	if err != nil {
		return 0, err
	}

	out, err := r.run(ctx, path)
	if err != nil {
		return 0, err
	}

	boot, err := time.ParseInLocation(bootLayout, strings.TrimSpace(string(out)), r.Location)
	if err != nil {
		return 0, fmt.Errorf("parsing boot time %q: %w", out, err)
	}

	secs := r.Now().Sub(boot).Seconds()
	if err := plausible(secs, r.Max); err != nil {
		return 0, fmt.Errorf("boot time %s: %w", boot.Format(bootLayout), err)
	}
	return secs, nil
}

// executable returns the first candidate that passes vetExecutable
func (r *CommandRunner) executable() (string, error) {
	var errs []error
	for _, p := range r.Paths {
		if !filepath.IsAbs(p) || filepath.Clean(p) != p {
			errs = append(errs, fmt.Errorf("%s: not a clean absolute path", p))
			continue
		}
		if err := vetExecutable(p); err != nil {
			errs = append(errs, err)
			continue
		}
		return p, nil
	}
	return "", fmt.Errorf("%w: %v", ErrNoExecutable, errors.Join(errs...))
}

func (r *CommandRunner) run(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "-s")
	cmd.Env = commandEnv
	cmd.Dir = "/"
	cmd.Stdin = nil
	cmd.Stderr = nil
	// Children that inherit stdout must not keep Output waiting past the deadline
	cmd.WaitDelay = 100 * time.Millisecond

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("running %s: %w", path, ctx.Err())
		}
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return stdout.Bytes(), nil
}
