//go:build !windows

package uptime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// vetExecutable opens path without following a final symlink and checks that
// it is a regular file with an execute bit that is not world-writable.
func vetExecutable(path string) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOFOLLOW|unix.O_CLOEXEC|unix.O_NONBLOCK, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return fmt.Errorf("%s: stat: %w", path, err)
	}

	mode := uint32(st.Mode)
	switch {
	case mode&unix.S_IFMT != unix.S_IFREG:
		return fmt.Errorf("%s: not a regular file", path)
	case mode&0o111 == 0:
		return fmt.Errorf("%s: not executable", path)
	case mode&0o002 != 0:
		return fmt.Errorf("%s: world-writable", path)
	}
	return nil
}
