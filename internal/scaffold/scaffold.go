package scaffold

import (
	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

// Render returns every source stub, SwiftPM manifest and the ignore file
// for m. Local packages come first in graph order, then the app.
func Render(m *model.ProjectModel) ([]artifact.Artifact, error) {
	r, err := defaultRenderer()
	if err != nil {
		return nil, err
	}

	var out []artifact.Artifact
	for _, mod := range m.LocalPackages() {
		pkg, err := localPackage(r, m, mod)
		if err != nil {
			return nil, err
		}
		stubs, err := moduleStubs(r, m, mod)
		if err != nil {
			return nil, err
		}
		out = append(out, pkg)
		out = append(out, stubs...)
	}

	app, err := appStubs(r, m)
	if err != nil {
		return nil, err
	}
	out = append(out, app...)

	bridge, err := colorBridge(r, m)
	if err != nil {
		return nil, err
	}
	if bridge != nil {
		out = append(out, *bridge)
	}

	root, err := rootPackage(r, m)
	if err != nil {
		return nil, err
	}
	ignore, err := gitignore(r)
	if err != nil {
		return nil, err
	}
	return append(out, root, ignore), nil
}
