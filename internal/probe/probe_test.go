package probe

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/QueenOverlord/linux-recon-toolkit/internal/config"
	"github.com/QueenOverlord/linux-recon-toolkit/internal/system"
)

// stubRunner returns a fixed result regardless of argv.
func stubRunner(res system.Result) system.Runner {
	return func(ctx context.Context, timeout time.Duration, argv ...string) system.Result {
		return res
	}
}

func failure(kind system.FailureKind) system.Result {
	return system.Result{Failure: &system.Failure{Kind: kind, Argv: []string{"stub"}}}
}

func TestActiveUsers(t *testing.T) {
	tests := []struct {
		name     string
		result   system.Result
		wantOK   bool
		wantBody string
	}{
		{"populated output", system.Result{Stdout: "alice pts/0 2026-08-29 10:00"}, true, "alice pts/0 2026-08-29 10:00"},
		{"empty success is a positive finding", system.Result{}, true, "No active users found."},
		{"command failure drops the section", failure(system.NonZeroExit), false, ""},
		{"missing command drops the section", failure(system.NotFound), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewActiveUsers(stubRunner(tt.result), config.Default())
			section, ok := c.Collect(context.Background())
			if ok != tt.wantOK {
				t.Fatalf("Collect() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if section.Header != "--- Active Users ---" {
				t.Errorf("Header = %q, want %q", section.Header, "--- Active Users ---")
			}
			if section.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", section.Body, tt.wantBody)
			}
		})
	}
}

func TestLastLogins(t *testing.T) {
	tests := []struct {
		name     string
		result   system.Result
		wantOK   bool
		wantBody string
	}{
		{"populated output", system.Result{Stdout: "alice tty1 Fri Aug 29 10:00"}, true, "alice tty1 Fri Aug 29 10:00"},
		{"empty success", system.Result{}, true, "No login history found."},
		{"timeout drops the section", failure(system.Timeout), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLastLogins(stubRunner(tt.result), config.Default())
			section, ok := c.Collect(context.Background())
			if ok != tt.wantOK {
				t.Fatalf("Collect() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && section.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", section.Body, tt.wantBody)
			}
		})
	}
}

func TestListeningPorts(t *testing.T) {
	ssOutput := "Netid State Recv-Q Send-Q Local Address:Port Peer Address:Port Process\n" +
		`tcp LISTEN 0 128 0.0.0.0:22 0.0.0.0:* users:(("sshd",pid=1,fd=3))`

	t.Run("parses records into report lines", func(t *testing.T) {
		c := NewListeningPorts(stubRunner(system.Result{Stdout: ssOutput}), config.Default())
		section, ok := c.Collect(context.Background())
		if !ok {
			t.Fatal("Collect() ok = false, want true")
		}
		if !strings.Contains(section.Body, "0.0.0.0:22") {
			t.Errorf("Body = %q, want it to contain the local address", section.Body)
		}
		if !strings.Contains(section.Body, "sshd") {
			t.Errorf("Body = %q, want it to contain the process name", section.Body)
		}
	})

	t.Run("header-only output is a positive empty finding", func(t *testing.T) {
		headerOnly := "Netid State Recv-Q Send-Q Local Address:Port Peer Address:Port Process"
		c := NewListeningPorts(stubRunner(system.Result{Stdout: headerOnly}), config.Default())
		section, ok := c.Collect(context.Background())
		if !ok {
			t.Fatal("Collect() ok = false, want true")
		}
		if section.Body != "No listening ports found." {
			t.Errorf("Body = %q, want %q", section.Body, "No listening ports found.")
		}
	})

	t.Run("command failure drops the section", func(t *testing.T) {
		c := NewListeningPorts(stubRunner(failure(system.NotFound)), config.Default())
		if _, ok := c.Collect(context.Background()); ok {
			t.Error("Collect() ok = true, want false")
		}
	})
}

func TestCloudMetadata(t *testing.T) {
	tests := []struct {
		name         string
		result       system.Result
		wantPositive bool
	}{
		{"reachable metadata service", system.Result{Stdout: "ami-id\nhostname\ninstance-id"}, true},
		{"empty response is a negative finding", system.Result{}, false},
		{"unreachable is a negative finding", failure(system.NonZeroExit), false},
		{"curl missing is a negative finding", failure(system.NotFound), false},
		{"timeout is a negative finding", failure(system.Timeout), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCloudMetadata(stubRunner(tt.result), config.Default())
			section, ok := c.Collect(context.Background())
			// This probe always produces a definite finding
			if !ok {
				t.Fatal("Collect() ok = false, want true")
			}
			positive := strings.Contains(section.Body, "likely a cloud instance")
			if positive != tt.wantPositive {
				t.Errorf("Body = %q, positive = %v, want %v", section.Body, positive, tt.wantPositive)
			}
		})
	}
}

func TestAllOrderAndToggles(t *testing.T) {
	run := stubRunner(system.Result{Stdout: "x"})

	t.Run("default order", func(t *testing.T) {
		collectors := All(run, config.Default())
		want := []string{"users", "logins", "ports", "cloud-metadata"}
		if len(collectors) != len(want) {
			t.Fatalf("All() returned %d collectors, want %d", len(collectors), len(want))
		}
		for i, name := range want {
			if collectors[i].Name() != name {
				t.Errorf("collector %d = %q, want %q", i, collectors[i].Name(), name)
			}
		}
	})

	t.Run("disabled probe is skipped", func(t *testing.T) {
		cfg := config.Default()
		cfg.Probes["ports"] = false
		collectors := All(run, cfg)
		for _, c := range collectors {
			if c.Name() == "ports" {
				t.Error("disabled ports probe still present")
			}
		}
		if len(collectors) != 3 {
			t.Errorf("All() returned %d collectors, want 3", len(collectors))
		}
	})
}
