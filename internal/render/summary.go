package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary describes one generation run. It is the public contract for
// new --json output.
type Summary struct {
	Name              string   `json:"name"`
	Output            string   `json:"output"`
	Layout            string   `json:"layout"`
	Backend           string   `json:"backend"`
	ToolVersion       string   `json:"tool_version"`
	ToolVersionSource string   `json:"tool_version_source"`
	BundleID          string   `json:"bundle_id"`
	Modules           []string `json:"modules"`
	Colors            []string `json:"colors"`
	Dirs              []string `json:"dirs"`
	Files             []string `json:"files"`
	PackagesInited    []string `json:"packages_initialized"`
	Git               string   `json:"git"`
	DryRun            bool     `json:"dry_run"`
}

func (s *Summary) normalize() {
	for _, list := range []*[]string{&s.Modules, &s.Colors, &s.Dirs, &s.Files, &s.PackagesInited} {
		if *list == nil {
			*list = []string{}
		}
	}
}

var (
	headingColor = lipgloss.Color("#5B8DEF")
	mutedColor   = lipgloss.Color("#888888")
)

// WriteSummary writes s as human-readable text: a heading followed by
// stable key: value lines and the file list. Styling is dropped when w is
// not a terminal.
func WriteSummary(w io.Writer, s *Summary) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true).Foreground(headingColor)
	muted := r.NewStyle().Foreground(mutedColor)

	verb := "Scaffolded"
	if s.DryRun {
		verb = "Would scaffold"
	}

	var b strings.Builder
	fmt.Fprintln(&b, heading.Render(verb+" "+s.Name))
	fmt.Fprintf(&b, "output: %s\n", s.Output)
	fmt.Fprintf(&b, "layout: %s\n", s.Layout)
	fmt.Fprintf(&b, "backend: %s\n", s.Backend)
	if s.ToolVersion != "" {
		fmt.Fprintf(&b, "tool_version: %s (%s)\n", s.ToolVersion, s.ToolVersionSource)
	}
	fmt.Fprintf(&b, "bundle_id: %s\n", s.BundleID)
	fmt.Fprintf(&b, "modules: %s\n", listOrNone(s.Modules))
	fmt.Fprintf(&b, "colors: %s\n", listOrNone(s.Colors))
	if len(s.PackagesInited) > 0 {
		fmt.Fprintf(&b, "packages_initialized: %s\n", strings.Join(s.PackagesInited, ", "))
	}
	if s.Git != "" {
		fmt.Fprintf(&b, "git: %s\n", s.Git)
	}

	fmt.Fprintln(&b, heading.Render(fmt.Sprintf("Files (%d)", len(s.Files))))
	for _, f := range s.Files {
		fmt.Fprintf(&b, "  %s\n", muted.Render(f))
	}

	if s.DryRun {
		fmt.Fprintln(&b, "dry_run: true")
	} else {
		fmt.Fprintln(&b, "status: ok")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
