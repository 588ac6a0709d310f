// Package commands implements scaffoldkit CLI commands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/color"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/fs"
	"github.com/NielsdaWheelz/scaffoldkit/internal/git"
	"github.com/NielsdaWheelz/scaffoldkit/internal/logging"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
	"github.com/NielsdaWheelz/scaffoldkit/internal/render"
	"github.com/NielsdaWheelz/scaffoldkit/internal/scaffold"
	"github.com/NielsdaWheelz/scaffoldkit/internal/toolchain"
)

// NewOpts holds the resolved options for `scaffoldkit new`. The CLI fills
// it from flags layered over the user config.
type NewOpts struct {
	Name            string
	Output          string // defaults to <cwd>/<Name>
	OrganizationID  string
	PlatformVersion string
	ToolVersion     string
	Modular         bool
	Prefix          string
	Colors          string
	Backend         string
	PackageInit     bool
	GitInit         bool
	Force           bool
	DryRun          bool
	JSON            bool
}

// New implements `scaffoldkit new`. The whole plan is rendered before the
// first write, so validation failures leave the disk untouched.
func New(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, cwd string, opts NewOpts, stdout, stderr io.Writer) error {
	logger := logging.FromContext(ctx)

	// 1. Validate input and parse colors and backend
	spec, err := buildSpec(cwd, opts)
	if err != nil {
		return err
	}

	// 2. Resolve the backend tool version
	tool := toolchain.ResolveVersion(ctx, cr, spec.Backend, opts.ToolVersion)
	spec.ToolVersion = tool.Version
	logger.Debug("resolved tool version",
		slog.String("backend", string(spec.Backend)),
		slog.String("version", tool.Version),
		slog.String("source", tool.Source),
	)

	// 3. Build the model and render the plan
	m, err := model.Build(spec)
	if err != nil {
		return err
	}
	plan, err := BuildPlan(m)
	if err != nil {
		return err
	}
	logger.Debug("rendered plan",
		slog.Int("dirs", len(plan.Dirs)),
		slog.Int("files", len(plan.Artifacts)),
	)

	// 4. Refuse a non-empty target
	exists, empty, err := fs.DirState(fsys, spec.OutputRoot)
	if err != nil {
		return errors.WrapWithDetails(errors.EIO, "failed to inspect output directory", err,
			map[string]string{"path": spec.OutputRoot})
	}
	if exists && !empty && !opts.Force {
		return errors.NewWithDetails(errors.ETargetNotEmpty,
			"output directory is not empty; pass --force to write into it",
			map[string]string{"path": spec.OutputRoot})
	}
	if exists {
		res, err := scaffold.KeepExistingGitignore(fsys, spec.OutputRoot, &plan)
		if err != nil {
			return err
		}
		logger.Debug("merged existing .gitignore", slog.String("result", string(res)))
	}

	summary := &render.Summary{
		Name:              spec.Name,
		Output:            spec.OutputRoot,
		Layout:            string(m.Layout),
		Backend:           string(spec.Backend),
		ToolVersion:       tool.Version,
		ToolVersionSource: tool.Source,
		BundleID:          spec.BundleID(),
		Modules:           m.Graph.Names(),
		Dirs:              plan.Dirs,
		Files:             plan.Paths(),
		DryRun:            opts.DryRun,
	}
	for _, c := range spec.Colors {
		summary.Colors = append(summary.Colors, c.Name)
	}

	// 5. Dry run stops before touching the disk
	if opts.DryRun {
		return writeSummary(stdout, summary, opts.JSON)
	}

	// 6. Native package initializer, one call per package root
	if opts.PackageInit {
		for _, root := range m.PackageRoots() {
			dir := filepath.Join(spec.OutputRoot, filepath.FromSlash(root.Dir))
			if err := fsys.MkdirAll(dir, artifact.DirMode); err != nil {
				return errors.WrapWithDetails(errors.EIO, "failed to create directory: "+dir, err,
					map[string]string{"path": dir})
			}
			if err := toolchain.InitPackage(ctx, cr, dir, root.Name); err != nil {
				return err
			}
			summary.PackagesInited = append(summary.PackagesInited, root.Name)
		}
	}

	// 7. Write
	if err := fs.WritePlan(ctx, fsys, spec.OutputRoot, plan); err != nil {
		return err
	}

	// 8. Optional repository
	if opts.GitInit {
		res, err := git.Init(ctx, cr, spec.OutputRoot)
		if err != nil {
			return err
		}
		summary.Git = string(res)
	}

	return writeSummary(stdout, summary, opts.JSON)
}

// buildSpec turns raw options into a ProjectSpec. Colors and backend are
// parsed here; field validation happens in model.Build.
func buildSpec(cwd string, opts NewOpts) (model.ProjectSpec, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return model.ProjectSpec{}, errors.New(errors.EUsage, "project name is required")
	}

	output := strings.TrimSpace(opts.Output)
	if output == "" {
		output = name
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(cwd, output)
	}

	platform, err := model.NormalizePlatformVersion(opts.PlatformVersion)
	if err != nil {
		return model.ProjectSpec{}, err
	}

	colors, err := color.Parse(opts.Colors)
	if err != nil {
		return model.ProjectSpec{}, err
	}

	backend, err := model.ParseBackend(opts.Backend)
	if err != nil {
		return model.ProjectSpec{}, err
	}

	return model.ProjectSpec{
		Name:            name,
		OutputRoot:      filepath.Clean(output),
		OrganizationID:  strings.TrimSpace(opts.OrganizationID),
		PlatformVersion: platform,
		Modular:         opts.Modular,
		ModulePrefix:    strings.TrimSpace(opts.Prefix),
		Colors:          colors,
		Backend:         backend,
	}, nil
}

func writeSummary(w io.Writer, s *render.Summary, asJSON bool) error {
	var err error
	if asJSON {
		err = render.WriteSummaryJSON(w, s)
	} else {
		err = render.WriteSummary(w, s)
	}
	if err != nil {
		return errors.Wrap(errors.EIO, "failed to write summary", err)
	}
	return nil
}
