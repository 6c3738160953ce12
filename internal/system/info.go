package system

import (
	"os"
	"strings"
)

// Info holds basic host identification for the report header.
// Fields are best-effort and may be empty.
type Info struct {
	Hostname string
	OS       string
	Kernel   string
}

// HostInfo returns basic host information read from /etc and /proc.
func HostInfo() Info {
	info := Info{}

	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		info.Hostname = strings.TrimSpace(string(data))
	}

	if path := TryPaths("/etc/os-release", "/usr/lib/os-release"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			info.OS = parseOSRelease(string(data))
		}
	}

	if data, err := os.ReadFile("/proc/version"); err == nil {
		parts := strings.Fields(string(data))
		if len(parts) >= 3 {
			info.Kernel = parts[2]
		}
	}

	return info
}

func parseOSRelease(data string) string {
	for _, line := range strings.Split(data, "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
		}
	}
	return ""
}
