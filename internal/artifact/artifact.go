// Package artifact defines the unit of generated output and the plan that
// collects a full generation run before anything touches the disk.
package artifact

import (
	"os"
	"path"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

const (
	// FileMode is the permission used for generated files.
	FileMode os.FileMode = 0o644
	// DirMode is the permission used for generated directories.
	DirMode os.FileMode = 0o755
)

// Artifact is one generated file. Path is slash-separated and relative to
// the output root.
type Artifact struct {
	Path    string
	Content []byte
	Mode    os.FileMode
}

// New returns an artifact with the default file mode.
func New(relPath string, content []byte) Artifact {
	return Artifact{Path: relPath, Content: content, Mode: FileMode}
}

// Text is New for string content.
func Text(relPath, content string) Artifact {
	return New(relPath, []byte(content))
}

// Plan is the complete output of one generation run: the directory
// skeleton (in creation order) and every file.
type Plan struct {
	Dirs      []string
	Artifacts []Artifact
}

// AddDir appends a directory to the skeleton unless it is already present.
func (p *Plan) AddDir(dir string) {
	for _, d := range p.Dirs {
		if d == dir {
			return
		}
	}
	p.Dirs = append(p.Dirs, dir)
}

// Add appends artifacts to the plan.
func (p *Plan) Add(arts ...Artifact) {
	p.Artifacts = append(p.Artifacts, arts...)
}

// Paths returns the artifact paths in plan order.
func (p *Plan) Paths() []string {
	out := make([]string, 0, len(p.Artifacts))
	for _, a := range p.Artifacts {
		out = append(out, a.Path)
	}
	return out
}

// Find returns the artifact at relPath.
func (p *Plan) Find(relPath string) (Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Path == relPath {
			return a, true
		}
	}
	return Artifact{}, false
}

// Replace swaps in a for the artifact with the same path and reports
// whether one was found.
func (p *Plan) Replace(a Artifact) bool {
	for i := range p.Artifacts {
		if p.Artifacts[i].Path == a.Path {
			p.Artifacts[i] = a
			return true
		}
	}
	return false
}

// Validate checks that every path is relative, clean and unique.
func (p *Plan) Validate() error {
	seen := make(map[string]bool, len(p.Artifacts))
	for _, a := range p.Artifacts {
		if err := checkRelPath(a.Path); err != nil {
			return err
		}
		if seen[a.Path] {
			return errors.NewWithDetails(errors.EInternal, "artifact generated twice", map[string]string{"path": a.Path})
		}
		seen[a.Path] = true
	}
	for _, d := range p.Dirs {
		if err := checkRelPath(d); err != nil {
			return err
		}
	}
	return nil
}

func checkRelPath(p string) error {
	if p == "" || strings.HasPrefix(p, "/") || path.Clean(p) != p || p == ".." || strings.HasPrefix(p, "../") {
		return errors.NewWithDetails(errors.EInternal, "invalid artifact path", map[string]string{"path": p})
	}
	return nil
}
