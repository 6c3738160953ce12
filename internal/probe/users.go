package probe

import (
	"context"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/logging"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// ActiveUsers reports who is currently logged in.
type ActiveUsers struct {
	run     system.Runner
	timeout time.Duration
}

func NewActiveUsers(run system.Runner, cfg *config.Config) *ActiveUsers {
	return &ActiveUsers{run: run, timeout: cfg.CommandTimeout()}
}

func (c *ActiveUsers) Name() string { return "users" }

func (c *ActiveUsers) Collect(ctx context.Context) (Section, bool) {
	logging.Info("Checking for active users...")

	res := c.run(ctx, c.timeout, "who")
	if !res.OK() {
		logging.Errorf("active users probe: %s", res.Failure)
		return Section{}, false
	}

	body := res.Stdout
	if body == "" {
		// Nobody logged in is a positive finding, not an error
		body = "No active users found."
	}

	return Section{Header: "--- Active Users ---", Body: body}, true
}
