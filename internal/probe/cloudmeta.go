package probe

import (
	"context"
	"strconv"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/logging"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// metadataURL is the well-known link-local cloud metadata endpoint.
const metadataURL = "http://169.254.169.254/latest/meta-data/"

// CloudMetadata probes the link-local metadata service. Unreachable is
// the normal outcome on non-cloud hosts, so failures are a definite
// negative finding rather than an absent section, and are not reported
// on the diagnostic channel.
type CloudMetadata struct {
	run            system.Runner
	timeout        time.Duration
	connectTimeout int
}

func NewCloudMetadata(run system.Runner, cfg *config.Config) *CloudMetadata {
	return &CloudMetadata{
		run:            run,
		timeout:        cfg.CommandTimeout(),
		connectTimeout: cfg.Timeouts.MetadataConnect,
	}
}

func (c *CloudMetadata) Name() string { return "cloud-metadata" }

func (c *CloudMetadata) Collect(ctx context.Context) (Section, bool) {
	logging.Info("Checking cloud metadata service...")

	res := c.run(ctx, c.timeout,
		"curl", "-s", "--connect-timeout", strconv.Itoa(c.connectTimeout), metadataURL)

	body := "Metadata service not reachable - host does not appear to be a cloud instance."
	if res.OK() && res.Stdout != "" {
		body = "Metadata service reachable - this host is likely a cloud instance."
	}

	return Section{Header: "--- Cloud Metadata Check ---", Body: body}, true
}
