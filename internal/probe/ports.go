package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/logging"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/sockets"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// ListeningPorts reports listening TCP and UDP sockets with the
// process bound to each.
type ListeningPorts struct {
	run     system.Runner
	timeout time.Duration
}

func NewListeningPorts(run system.Runner, cfg *config.Config) *ListeningPorts {
	return &ListeningPorts{run: run, timeout: cfg.CommandTimeout()}
}

func (c *ListeningPorts) Name() string { return "ports" }

func (c *ListeningPorts) Collect(ctx context.Context) (Section, bool) {
	logging.Info("Scanning listening ports...")

	// tcp+udp, listening, numeric, with process info
	res := c.run(ctx, c.timeout, "ss", "-tulnp")
	if !res.OK() {
		logging.Errorf("listening ports probe: %s", res.Failure)
		return Section{}, false
	}

	records := sockets.Parse(res.Stdout)
	if len(records) == 0 {
		return Section{Header: "--- Listening Ports ---", Body: "No listening ports found."}, true
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = fmt.Sprintf("%-30s %s", rec.LocalAddr, rec.Process)
	}

	return Section{Header: "--- Listening Ports ---", Body: strings.Join(lines, "\n")}, true
}
