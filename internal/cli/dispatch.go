// Package cli handles command-line parsing and dispatch for scaffoldkit.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/NielsdaWheelz/scaffoldkit/internal/commands"
	"github.com/NielsdaWheelz/scaffoldkit/internal/config"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/fs"
	"github.com/NielsdaWheelz/scaffoldkit/internal/logging"
	"github.com/NielsdaWheelz/scaffoldkit/internal/paths"
	"github.com/NielsdaWheelz/scaffoldkit/internal/version"
)

const usageText = `scaffoldkit - generate consistent Swift package projects

usage: scaffoldkit <command> [options]

commands:
  new         generate a project tree (sources, asset catalog, manifests)
  doctor      show resolved configuration and available tools

options:
  -h, --help      show this help
  -v, --version   show version

run 'scaffoldkit <command> --help' for command-specific help.
`

const newUsageText = `usage: scaffoldkit new <Name> [options]

generate a project named <Name>. the whole tree is rendered in memory and
checked before anything is written.

arguments:
  Name                     project name; a Swift identifier (e.g., Widgets)

options:
  --output <dir>           output directory (default: ./<Name>)
  --org <id>               organization id, dotted (default: config organization_id)
  --platform-version <v>   minimum iOS version, e.g. 17.0 or v17 (default: config platform_version)
  --tool-version <v>       backend tool version to record (default: probe, then pinned)
  --modular                split into Util, Core and UI local packages
  --prefix <P>             module name prefix for --modular (e.g., Acme -> AcmeCore)
  --colors <list>          palette as "#RRGGBB=Name,#RGB=Name"
  --backend <name>         manifest backend: tuist, xcodegen or none (default: config backend)
  --package-init           run 'swift package init' for each package first
  --git                    run 'git init' in the output directory
  --force                  write into a non-empty output directory
  --dry-run                print the plan without writing
  --json                   print the summary as JSON
  -h, --help               show this help

examples:
  scaffoldkit new Widgets --colors "#FF0000=Red"
  scaffoldkit new Widgets --modular --prefix Acme --backend tuist
  scaffoldkit new Widgets --backend xcodegen --dry-run --json
`

const doctorUsageText = `usage: scaffoldkit doctor

show the resolved configuration and which external tools
(swift, tuist, xcodegen) are available.

options:
  -h, --help    show this help
`

// Run parses arguments and dispatches to the appropriate subcommand.
// Returns an error if the command fails; the caller should print the error and exit.
func Run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usageText)
		return errors.New(errors.EUsage, "no command specified")
	}

	cmd := args[0]
	cmdArgs := args[1:]

	// Handle global flags
	if cmd == "-h" || cmd == "--help" {
		fmt.Fprint(stdout, usageText)
		return nil
	}
	if cmd == "-v" || cmd == "--version" {
		fmt.Fprintf(stdout, "scaffoldkit %s\n", version.Version)
		return nil
	}

	switch cmd {
	case "new":
		return runNew(cmdArgs, stdout, stderr)
	case "doctor":
		return runDoctor(cmdArgs, stdout, stderr)
	default:
		fmt.Fprint(stdout, usageText)
		return errors.New(errors.EUsage, fmt.Sprintf("unknown command: %s", cmd))
	}
}

// environment is the config and logger shared by every command.
type environment struct {
	ctx       context.Context
	cfg       *config.Config
	configDir string
}

func loadEnvironment(stderr io.Writer) (*environment, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to get home directory", err)
	}
	configDir := paths.ConfigDir(paths.OSEnv{}, homeDir)

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	logger.Debug("loaded config", "dir", configDir, "file", cfg.File)

	return &environment{
		ctx:       logging.WithLogger(context.Background(), logger),
		cfg:       cfg,
		configDir: configDir,
	}, nil
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// parseInterleaved parses flags that may appear before or after positional
// arguments and returns the positionals in order.
func parseInterleaved(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			return nil, err
		}
		rest := flagSet.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func runNew(args []string, stdout, stderr io.Writer) error {
	// Handle help manually to return nil (exit 0)
	if wantsHelp(args) {
		fmt.Fprint(stdout, newUsageText)
		return nil
	}

	env, err := loadEnvironment(stderr)
	if err != nil {
		return err
	}
	cfg := env.cfg

	flagSet := flag.NewFlagSet("new", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	output := flagSet.String("output", "", "output directory")
	org := flagSet.String("org", cfg.OrganizationID, "organization id")
	platform := flagSet.String("platform-version", cfg.PlatformVersion, "minimum platform version")
	toolVersion := flagSet.String("tool-version", cfg.ToolVersion, "backend tool version")
	modular := flagSet.Bool("modular", false, "modular layout")
	prefix := flagSet.String("prefix", "", "module name prefix")
	colors := flagSet.String("colors", "", "color palette")
	backend := flagSet.String("backend", cfg.Backend, "manifest backend")
	packageInit := flagSet.Bool("package-init", cfg.PackageInit, "run swift package init")
	gitInit := flagSet.Bool("git", cfg.GitInit, "run git init")
	force := flagSet.Bool("force", false, "write into a non-empty directory")
	dryRun := flagSet.Bool("dry-run", false, "print the plan without writing")
	jsonOut := flagSet.Bool("json", false, "print JSON")

	positional, err := parseInterleaved(flagSet, args)
	if err != nil {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	}
	if len(positional) != 1 {
		fmt.Fprint(stderr, newUsageText)
		if len(positional) == 0 {
			return errors.New(errors.EUsage, "project name is required")
		}
		return errors.New(errors.EUsage, fmt.Sprintf("expected one project name, got %d arguments", len(positional)))
	}

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(errors.EIO, "failed to get working directory", err)
	}

	// Create real implementations
	cr := exec.NewRealRunner()
	fsys := fs.NewRealFS()

	opts := commands.NewOpts{
		Name:            positional[0],
		Output:          *output,
		OrganizationID:  *org,
		PlatformVersion: *platform,
		ToolVersion:     *toolVersion,
		Modular:         *modular,
		Prefix:          *prefix,
		Colors:          *colors,
		Backend:         *backend,
		PackageInit:     *packageInit,
		GitInit:         *gitInit,
		Force:           *force,
		DryRun:          *dryRun,
		JSON:            *jsonOut,
	}

	return commands.New(env.ctx, cr, fsys, cwd, opts, stdout, stderr)
}

func runDoctor(args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("doctor", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	// Handle help manually to return nil (exit 0)
	if wantsHelp(args) {
		fmt.Fprint(stdout, doctorUsageText)
		return nil
	}

	if err := flagSet.Parse(args); err != nil {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	}
	if flagSet.NArg() > 0 {
		fmt.Fprint(stderr, doctorUsageText)
		return errors.New(errors.EUsage, "doctor takes no arguments")
	}

	env, err := loadEnvironment(stderr)
	if err != nil {
		return err
	}

	return commands.Doctor(env.ctx, exec.NewRealRunner(), env.cfg, env.configDir, stdout, stderr)
}
