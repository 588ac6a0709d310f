// Package toolchain talks to the external developer tools: the manifest
// backends' version probes and the native package initializer.
package toolchain

import (
	"context"
	"regexp"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/logging"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

// Fallback tool versions recorded when no explicit version is given and the
// tool cannot be probed.
const (
	DefaultTuistVersion    = "4.38.2"
	DefaultXcodeGenVersion = "2.42.0"
)

// Version sources.
const (
	SourceExplicit = "explicit"
	SourceProbe    = "probe"
	SourceDefault  = "default"
	SourceNone     = "none"
)

var versionRe = regexp.MustCompile(`[0-9]+(\.[0-9]+)+`)

// Resolution is a resolved tool version and where it came from.
type Resolution struct {
	Version string
	Source  string
}

type probe struct {
	name     string
	args     []string
	fallback string
}

var probes = map[model.Backend]probe{
	model.BackendTuist:    {name: "tuist", args: []string{"version"}, fallback: DefaultTuistVersion},
	model.BackendXcodeGen: {name: "xcodegen", args: []string{"--version"}, fallback: DefaultXcodeGenVersion},
}

// ResolveVersion returns explicit when set, otherwise the probed version of
// the backend tool, otherwise the fallback constant. Probe failures are
// logged and never returned. BackendNone records only an explicit value.
func ResolveVersion(ctx context.Context, cr exec.CommandRunner, backend model.Backend, explicit string) Resolution {
	if v := strings.TrimSpace(explicit); v != "" {
		return Resolution{Version: v, Source: SourceExplicit}
	}
	p, ok := probes[backend]
	if !ok {
		return Resolution{Source: SourceNone}
	}
	if v, ok := ProbeVersion(ctx, cr, p.name, p.args...); ok {
		return Resolution{Version: v, Source: SourceProbe}
	}
	logging.FromContext(ctx).Debug("tool version probe failed, using fallback",
		"tool", p.name, "version", p.fallback)
	return Resolution{Version: p.fallback, Source: SourceDefault}
}

// ProbeVersion runs a version command and extracts the first dotted version
// number from its output.
func ProbeVersion(ctx context.Context, cr exec.CommandRunner, name string, args ...string) (string, bool) {
	result, err := cr.Run(ctx, name, args, exec.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return "", false
	}
	v := versionRe.FindString(result.Stdout)
	if v == "" {
		v = versionRe.FindString(result.Stderr)
	}
	return v, v != ""
}

// InitPackage runs `swift package init` for a library named name in dir.
// A non-zero exit is an E_EXTERNAL_TOOL error carrying the tool's output.
func InitPackage(ctx context.Context, cr exec.CommandRunner, dir, name string) error {
	logging.FromContext(ctx).Debug("initializing swift package", "dir", dir, "name", name)
	_, err := exec.RunChecked(ctx, cr, "swift",
		[]string{"package", "init", "--type", "library", "--name", name},
		exec.RunOpts{Dir: dir})
	return err
}
