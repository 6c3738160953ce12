package main

import (
	"context"

	"github.com/google/uuid"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/logging"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/probe"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/report"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

func main() {
	cfg := config.Load()

	auditID := uuid.NewString()
	logging.SetAuditID(auditID)
	logging.Info("Starting security audit")

	for _, tool := range []string{"who", "last", "ss", "curl"} {
		if !system.CommandExists(tool) {
			logging.Warnf("%s not found in PATH; its probe will be incomplete", tool)
		}
	}

	ctx := context.Background()

	assembler := &report.Assembler{
		OutputDir: cfg.OutputDir,
		AuditID:   auditID,
		Host:      system.HostInfo(),
	}

	text := assembler.Assemble(ctx, probe.All(system.Run, cfg))

	path, err := assembler.Write(text)
	if err != nil {
		// Critical for the operator, but the process still exits 0
		logging.ErrorWithErr(err, "Failed to write report")
		return
	}

	logging.Infof("Report written to %s", path)
}
