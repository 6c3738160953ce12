// Package sockets parses the output of a socket-listing command into
// structured listening-socket records.
package sockets

import "strings"

// UnknownProcess is the sentinel for records whose process descriptor
// is absent or unparseable.
const UnknownProcess = "N/A"

// ListeningSocket is one open, listening network endpoint and the
// process bound to it.
type ListeningSocket struct {
	LocalAddr string
	Process   string
}

// Parse turns raw `ss -tulnp` output into listening-socket records.
// The first line is the column header. Records with fewer than 5
// whitespace-separated fields are skipped. The local address:port is
// field 4; the process descriptor, when present, is field 6 in the
// usual users:(("name",pid=...,fd=...)) convention. Tolerant by
// design: malformed lines are dropped, never reported as errors.
func Parse(raw string) []ListeningSocket {
	records := []ListeningSocket{}

	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return records
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		descriptor := UnknownProcess
		if len(fields) >= 7 {
			descriptor = fields[6]
		}

		records = append(records, ListeningSocket{
			LocalAddr: fields[4],
			Process:   processName(descriptor),
		})
	}

	return records
}

// processName extracts the quoted process name from a descriptor like
// users:(("sshd",pid=1,fd=3)). A descriptor without a quoted name is
// treated as unparseable, not as an error.
func processName(descriptor string) string {
	start := strings.Index(descriptor, `"`)
	if start < 0 {
		return UnknownProcess
	}
	rest := descriptor[start+1:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return UnknownProcess
	}
	return rest[:end]
}
