package probe

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner abstracts subprocess execution so probes can be mocked in
// tests and replaced by embedding applications.
type CommandRunner interface {
	// Output runs a command and returns its captured standard output.
	// Standard error is discarded. A returned *exec.ExitError still carries
	// whatever the process wrote before exiting nonzero; callers decide
	// whether the exit code matters.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// OSCommandRunner is the default implementation using os/exec.
type OSCommandRunner struct{}

// NewOSCommandRunner creates a new OSCommandRunner instance.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Output implements CommandRunner.Output.
// Uses exec.CommandContext with separate arguments so the binary path is
// never interpreted by a shell.
func (r *OSCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	return stdout.Bytes(), err
}
