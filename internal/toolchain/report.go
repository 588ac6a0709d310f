package toolchain

import (
	"context"

	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

// ToolStatus is one line of the doctor report.
type ToolStatus struct {
	Name    string
	Found   bool
	Version string
}

// Check probes swift, tuist and xcodegen. Missing tools are reported, not
// returned as errors.
func Check(ctx context.Context, cr exec.CommandRunner) []ToolStatus {
	checks := []probe{
		{name: "swift", args: []string{"--version"}},
		probes[model.BackendTuist],
		probes[model.BackendXcodeGen],
	}

	out := make([]ToolStatus, 0, len(checks))
	for _, c := range checks {
		v, ok := ProbeVersion(ctx, cr, c.name, c.args...)
		out = append(out, ToolStatus{Name: c.name, Found: ok, Version: v})
	}
	return out
}
