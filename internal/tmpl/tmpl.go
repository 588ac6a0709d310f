// Package tmpl renders embedded text/template files into artifacts.
package tmpl

import (
	"bytes"
	iofs "io/fs"
	"strconv"
	"strings"
	"text/template"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// Renderer holds a parsed template set.
type Renderer struct {
	set *template.Template
}

var funcs = template.FuncMap{
	"join":  strings.Join,
	"quote": strconv.Quote,
}

// New parses every template in fsys that matches patterns.
func New(fsys iofs.FS, patterns ...string) (*Renderer, error) {
	set, err := template.New("").Funcs(funcs).Option("missingkey=error").ParseFS(fsys, patterns...)
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to parse templates", err)
	}
	return &Renderer{set: set}, nil
}

// Render executes the named template.
func (r *Renderer) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.WrapWithDetails(errors.EInternal, "failed to render template", err,
			map[string]string{"template": name})
	}
	return buf.String(), nil
}

// Artifact renders name into an artifact at relPath.
func (r *Renderer) Artifact(relPath, name string, data any) (artifact.Artifact, error) {
	out, err := r.Render(name, data)
	if err != nil {
		return artifact.Artifact{}, err
	}
	return artifact.Text(relPath, out), nil
}
