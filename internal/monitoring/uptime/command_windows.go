//go:build windows

package uptime

func vetExecutable(path string) error {
	return ErrUnsupported
}
