// Package manifest renders the build manifest of a project for one of the
// supported backends. Each backend and layout is an independent pure
// function of the project model.
package manifest

import (
	"embed"
	"sync"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
	"github.com/NielsdaWheelz/scaffoldkit/internal/tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	rendererOnce sync.Once
	renderer     *tmpl.Renderer
	rendererErr  error
)

func templates() (*tmpl.Renderer, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = tmpl.New(templateFS, "templates/*.tmpl")
	})
	return renderer, rendererErr
}

// Render dispatches on the model's backend. BackendNone renders nothing.
func Render(m *model.ProjectModel) ([]artifact.Artifact, error) {
	switch m.Spec.Backend {
	case model.BackendTuist:
		if m.IsModular() {
			return TuistModular(m)
		}
		return TuistSingle(m)
	case model.BackendXcodeGen:
		if m.IsModular() {
			return XcodeGenModular(m)
		}
		return XcodeGenSingle(m)
	case model.BackendNone:
		return nil, nil
	}
	return nil, model.UnsupportedBackend(string(m.Spec.Backend))
}
