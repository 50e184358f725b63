package sysinfo

import "OctoUptime/internal/monitoring/uptime"

// SystemInfo represents general system information
type SystemInfo struct {
	Uptime          string        `json:"uptime"`           // System uptime, full format
	UptimeSeconds   *float64      `json:"uptime_seconds"`   // nil when no source answered
	UptimeSource    uptime.Source `json:"uptime_source"`    // Strategy that produced the uptime
	BootTime        string        `json:"boot_time"`        // RFC3339, empty when unknown
	CurrentTime     string        `json:"current_time"`     // Current system time
	ProcessCount    int           `json:"process_count"`    // Number of running processes
	Hostname        string        `json:"hostname"`         // Hostname of the system
	OS              string        `json:"os"`               // Operating system
	Platform        string        `json:"platform"`         // Platform name
	PlatformVersion string        `json:"platform_version"` // Platform version
	KernelVersion   string        `json:"kernel_version"`   // Kernel version
	IPAddresses     []string      `json:"ip_addresses"`     // List of IP addresses
}
