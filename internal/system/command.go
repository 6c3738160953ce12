// Package system executes external host utilities and gathers basic
// host information. All command failures are converted to result
// values at this boundary; callers never inspect exit codes or
// process state directly.
package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout is the wall-clock bound for one external command.
const DefaultTimeout = 10 * time.Second

// FailureKind classifies why a command produced no output.
type FailureKind int

const (
	// NotFound means the executable could not be located or launched.
	NotFound FailureKind = iota
	// NonZeroExit means the command ran but signaled failure.
	NonZeroExit
	// Timeout means the command exceeded its wall-clock bound.
	Timeout
)

func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NonZeroExit:
		return "non-zero exit"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Failure describes a failed command invocation.
type Failure struct {
	Kind   FailureKind
	Argv   []string
	Stderr string
}

func (f *Failure) String() string {
	switch f.Kind {
	case NotFound:
		name := ""
		if len(f.Argv) > 0 {
			name = f.Argv[0]
		}
		return fmt.Sprintf("command not found: %s", name)
	case Timeout:
		return fmt.Sprintf("command timed out: %s", strings.Join(f.Argv, " "))
	default:
		if f.Stderr != "" {
			return fmt.Sprintf("command failed: %s (stderr: %s)", strings.Join(f.Argv, " "), f.Stderr)
		}
		return fmt.Sprintf("command failed: %s", strings.Join(f.Argv, " "))
	}
}

// Result is the outcome of one command invocation: trimmed stdout on
// success, a classified Failure otherwise. It carries no diagnostic
// side effects; callers decide whether a failure is worth reporting.
type Result struct {
	Stdout  string
	Failure *Failure
}

// OK reports whether the command produced usable output.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Runner is the command-execution contract collectors depend on, so
// tests can substitute a stub for real process execution.
type Runner func(ctx context.Context, timeout time.Duration, argv ...string) Result

// Run executes argv as a child process with stdout and stderr captured
// separately. The argument list is passed verbatim, never through a
// shell. On timeout the context kills the child so no process outlives
// the call.
func Run(ctx context.Context, timeout time.Duration, argv ...string) Result {
	if len(argv) == 0 {
		return Result{Failure: &Failure{Kind: NotFound}}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return Result{Stdout: strings.TrimSpace(stdout.String())}
	}

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Failure: &Failure{Kind: Timeout, Argv: argv}}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Failure: &Failure{
			Kind:   NonZeroExit,
			Argv:   argv,
			Stderr: strings.TrimSpace(stderr.String()),
		}}
	}

	// Launch failures (exec.Error from LookPath and friends)
	return Result{Failure: &Failure{Kind: NotFound, Argv: argv}}
}
