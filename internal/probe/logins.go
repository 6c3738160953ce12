package probe

import (
	"context"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/logging"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// LastLogins reports the most recent login records.
type LastLogins struct {
	run     system.Runner
	timeout time.Duration
}

func NewLastLogins(run system.Runner, cfg *config.Config) *LastLogins {
	return &LastLogins{run: run, timeout: cfg.CommandTimeout()}
}

func (c *LastLogins) Name() string { return "logins" }

func (c *LastLogins) Collect(ctx context.Context) (Section, bool) {
	logging.Info("Retrieving last 10 logins...")

	res := c.run(ctx, c.timeout, "last", "-n", "10")
	if !res.OK() {
		logging.Errorf("last logins probe: %s", res.Failure)
		return Section{}, false
	}

	body := res.Stdout
	if body == "" {
		body = "No login history found."
	}

	return Section{Header: "--- Last 10 Logins ---", Body: body}, true
}
