// Package report assembles probe sections into the final plain-text
// report and persists it.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/probe"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

const (
	title     = "=== LINUX SECURITY AUDIT REPORT ==="
	separator = "=============================="

	// timestampFormat is the human-readable header timestamp;
	// filenameFormat is its filesystem-safe counterpart.
	timestampFormat = "2006-01-02 15:04:05"
	filenameFormat  = "2006-01-02_15-04-05"
)

// Assembler runs the collectors in fixed order and turns the surviving
// sections into one report. Now is replaceable for tests and defaults
// to time.Now.
type Assembler struct {
	OutputDir string
	AuditID   string
	Host      system.Info
	Now       func() time.Time
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Assemble invokes every collector sequentially, drops absent
// sections, and returns the full report text. The report is generated
// with whatever succeeded; a failed probe is an informational gap, not
// a fatal condition.
func (a *Assembler) Assemble(ctx context.Context, collectors []probe.Collector) string {
	var b strings.Builder

	b.WriteString(title + "\n")
	if a.AuditID != "" {
		fmt.Fprintf(&b, "Audit ID: %s\n", a.AuditID)
	}
	if a.Host.Hostname != "" {
		fmt.Fprintf(&b, "Hostname: %s\n", a.Host.Hostname)
	}
	if a.Host.OS != "" {
		fmt.Fprintf(&b, "OS: %s\n", a.Host.OS)
	}
	if a.Host.Kernel != "" {
		fmt.Fprintf(&b, "Kernel: %s\n", a.Host.Kernel)
	}
	fmt.Fprintf(&b, "Generated: %s\n", a.now().Format(timestampFormat))
	b.WriteString(separator + "\n")

	for _, c := range collectors {
		section, ok := c.Collect(ctx)
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(section.Header + "\n")
		b.WriteString(section.Body + "\n")
	}

	return b.String()
}

// Write persists the report text under a timestamped filename and
// returns the path. Two runs within the same clock second share a
// filename and the later write wins; accepted limitation.
func (a *Assembler) Write(text string) (string, error) {
	name := fmt.Sprintf("security_report_%s.txt", a.now().Format(filenameFormat))
	path := filepath.Join(a.OutputDir, name)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
