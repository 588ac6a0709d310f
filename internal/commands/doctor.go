package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/NielsdaWheelz/scaffoldkit/internal/config"
	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/paths"
	"github.com/NielsdaWheelz/scaffoldkit/internal/toolchain"
)

// DoctorReport holds all the data for doctor output.
type DoctorReport struct {
	ConfigDir  string
	ConfigFile string // empty when no config.yaml was read

	// Effective defaults for `new`
	OrganizationID  string
	PlatformVersion string
	Backend         string
	ToolVersion     string
	PackageInit     bool
	GitInit         bool

	Tools []toolchain.ToolStatus
}

// Doctor implements the `scaffoldkit doctor` command. It reports the
// effective configuration and which external tools are available. Missing
// tools are not an error; `new` falls back to pinned versions without them.
func Doctor(ctx context.Context, cr exec.CommandRunner, cfg *config.Config, configDir string, stdout, stderr io.Writer) error {
	report := DoctorReport{
		ConfigDir:       configDir,
		ConfigFile:      cfg.File,
		OrganizationID:  cfg.OrganizationID,
		PlatformVersion: cfg.PlatformVersion,
		Backend:         cfg.Backend,
		ToolVersion:     cfg.ToolVersion,
		PackageInit:     cfg.PackageInit,
		GitInit:         cfg.GitInit,
		Tools:           toolchain.Check(ctx, cr),
	}
	writeDoctorOutput(stdout, report)
	return nil
}

// writeDoctorOutput writes the stable key: value output.
func writeDoctorOutput(w io.Writer, r DoctorReport) {
	configFile := r.ConfigFile
	if configFile == "" {
		configFile = "none (" + filepath.Join(r.ConfigDir, paths.ConfigFile) + " not found)"
	}

	fmt.Fprintf(w, "config_dir: %s\n", r.ConfigDir)
	fmt.Fprintf(w, "config_file: %s\n", configFile)

	fmt.Fprintf(w, "organization_id: %s\n", r.OrganizationID)
	fmt.Fprintf(w, "platform_version: %s\n", r.PlatformVersion)
	fmt.Fprintf(w, "backend: %s\n", r.Backend)
	fmt.Fprintf(w, "tool_version: %s\n", orAuto(r.ToolVersion))
	fmt.Fprintf(w, "package_init: %s\n", boolStr(r.PackageInit))
	fmt.Fprintf(w, "git_init: %s\n", boolStr(r.GitInit))

	for _, t := range r.Tools {
		v := "not found"
		if t.Found {
			v = t.Version
		}
		fmt.Fprintf(w, "%s_version: %s\n", t.Name, v)
	}

	fmt.Fprintln(w, "status: ok")
}

func orAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
