// Package main implements linux-recon, a small host-security audit
// tool.
//
// linux-recon collects logged-in users, recent login history,
// listening network sockets and cloud-metadata reachability by
// invoking the host's own utilities, and writes the findings to a
// timestamped plain-text report.
package main
