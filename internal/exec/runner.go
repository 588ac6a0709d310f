// Package exec provides a stub-friendly interface for running external tools.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	scerrors "github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// RunChecked runs a one-shot tool invocation and turns both start failures
// and non-zero exits into E_EXTERNAL_TOOL. The captured stderr (or stdout
// when stderr is empty) is attached as the "diagnostics" detail.
func RunChecked(ctx context.Context, cr CommandRunner, name string, args []string, opts RunOpts) (CmdResult, error) {
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))

	result, err := cr.Run(ctx, name, args, opts)
	if err != nil {
		return result, scerrors.WrapWithDetails(scerrors.EExternalTool,
			"failed to run "+command, err, map[string]string{"command": command})
	}
	if result.ExitCode != 0 {
		diag := strings.TrimSpace(result.Stderr)
		if diag == "" {
			diag = strings.TrimSpace(result.Stdout)
		}
		return result, scerrors.NewWithDetails(scerrors.EExternalTool,
			command+" exited with status "+strconv.Itoa(result.ExitCode),
			map[string]string{"command": command, "diagnostics": diag})
	}
	return result, nil
}
