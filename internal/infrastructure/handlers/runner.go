// Package handlers implements the per-toolkit theme appliers behind
// port.Handler: GTK, Qt, Flatpak, and Snap.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts subprocess execution so handlers stay testable
// without the external tools installed.
type CommandRunner interface {
	// Run executes a command under ctx and returns its trimmed stdout.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports whether a tool exists on PATH.
	LookPath(name string) bool
}

// ExecRunner runs real subprocesses. Every invocation goes through
// exec.CommandContext, so the orchestrator's per-handler timeout bounds the
// wait on stuck external tools.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// LookPath implements CommandRunner.
func (ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
