// Package git initializes a repository in the generated tree via CommandRunner.
package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
)

// InitResult reports what Init did.
type InitResult string

const (
	InitCreated InitResult = "created"
	// InitSkipped means dir already sits inside a work tree.
	InitSkipped InitResult = "skipped"
)

// RepoRoot returns the enclosing repository root of dir, if any. It uses
// `git rev-parse --show-toplevel` and never returns an error: a missing git
// binary or a non-repo dir both report false.
func RepoRoot(ctx context.Context, cr exec.CommandRunner, dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	result, err := cr.Run(ctx, "git", []string{"rev-parse", "--show-toplevel"}, exec.RunOpts{Dir: dir})
	if err != nil || result.ExitCode != 0 {
		return "", false
	}

	out := strings.TrimSpace(result.Stdout)
	if out == "" || strings.Contains(out, "\n") {
		return "", false
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return filepath.Clean(out), true
}

// Init runs `git init` in dir unless dir is already inside a repository.
// A non-zero exit is E_EXTERNAL_TOOL with git's stderr attached.
func Init(ctx context.Context, cr exec.CommandRunner, dir string) (InitResult, error) {
	if _, ok := RepoRoot(ctx, cr, dir); ok {
		return InitSkipped, nil
	}
	if _, err := exec.RunChecked(ctx, cr, "git", []string{"init", "--quiet"}, exec.RunOpts{Dir: dir}); err != nil {
		return "", err
	}
	return InitCreated, nil
}
