// Package probe implements the audit's data-gathering steps. Each
// probe runs one external command and contributes one report section,
// or none when its command fails. A failed probe never aborts the
// audit.
package probe

import (
	"context"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// Section is one probe's contribution to the final report.
type Section struct {
	Header string
	Body   string
}

// Collector is one independent data-gathering step. Collect returns
// false when the underlying command failed and the section must be
// omitted from the report.
type Collector interface {
	Name() string
	Collect(ctx context.Context) (Section, bool)
}

// All returns the enabled collectors in report order: active users,
// last logins, listening ports, cloud-metadata check.
func All(run system.Runner, cfg *config.Config) []Collector {
	candidates := []Collector{
		NewActiveUsers(run, cfg),
		NewLastLogins(run, cfg),
		NewListeningPorts(run, cfg),
		NewCloudMetadata(run, cfg),
	}

	var enabled []Collector
	for _, c := range candidates {
		if cfg.ProbeEnabled(c.Name()) {
			enabled = append(enabled, c)
		}
	}
	return enabled
}
