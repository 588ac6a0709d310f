package commands

import (
	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/manifest"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
	"github.com/NielsdaWheelz/scaffoldkit/internal/scaffold"
)

// BuildPlan renders everything a run writes, entirely in memory: the
// directory skeleton in module order, the source stubs and SwiftPM
// manifests, the color catalog in the module that owns it, and the backend
// manifest.
func BuildPlan(m *model.ProjectModel) (artifact.Plan, error) {
	var plan artifact.Plan
	for _, dir := range m.Skeleton() {
		plan.AddDir(dir)
	}

	stubs, err := scaffold.Render(m)
	if err != nil {
		return artifact.Plan{}, err
	}
	plan.Add(stubs...)

	catalog, err := m.Catalog.Artifacts(m.ColorResourcesDir())
	if err != nil {
		return artifact.Plan{}, err
	}
	plan.Add(catalog...)

	manifests, err := manifest.Render(m)
	if err != nil {
		return artifact.Plan{}, err
	}
	plan.Add(manifests...)

	if err := plan.Validate(); err != nil {
		return artifact.Plan{}, err
	}
	return plan, nil
}
