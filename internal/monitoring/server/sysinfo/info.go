package sysinfo

import (
	"OctoUptime/internal/monitoring/uptime"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/shirou/gopsutil/host"
)

var (
	hostInfo   = host.InfoWithContext
	interfaces = net.Interfaces
	now        = time.Now
)

// GetSystemInfo retrieves general system information. The uptime comes from
// resolver so it agrees with the uptime endpoint; unknownLabel is shown when
// no source answers.
func GetSystemInfo(ctx context.Context, resolver *uptime.Resolver, unknownLabel string) (*SystemInfo, error) {
	current := now()

	reading := resolver.Resolve(ctx)
	info := &SystemInfo{
		Uptime:       unknownLabel,
		UptimeSource: reading.Source,
		CurrentTime:  current.Format(time.RFC3339),
	}
	if f, err := uptime.Render(reading.Seconds); reading.Available && err == nil {
		secs := reading.Seconds
		info.Uptime = f.Full
		info.UptimeSeconds = &secs
		info.BootTime = current.Add(-time.Duration(secs * float64(time.Second))).Truncate(time.Second).Format(time.RFC3339)
	}

	// Get host statistics
	hostStat, err := hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}
	info.ProcessCount = int(hostStat.Procs)
	info.Hostname = hostStat.Hostname
	info.OS = hostStat.OS
	info.Platform = hostStat.Platform
	info.PlatformVersion = hostStat.PlatformVersion
	info.KernelVersion = hostStat.KernelVersion

	// Get IP addresses
	info.IPAddresses, err = getIPAddresses()
	if err != nil {
		return nil, fmt.Errorf("failed to get IP addresses: %w", err)
	}

	return info, nil
}

// getIPAddresses retrieves all non-loopback IP addresses
func getIPAddresses() ([]string, error) {
	ips := []string{}
	ifaces, err := interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return nil, err
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.IsGlobalUnicast() {
				ips = append(ips, ip.String())
			}
		}
	}

	return ips, nil
}
