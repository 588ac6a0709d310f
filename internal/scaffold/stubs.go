package scaffold

import (
	"path"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/assets"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
	"github.com/NielsdaWheelz/scaffoldkit/internal/modgraph"
	"github.com/NielsdaWheelz/scaffoldkit/internal/tmpl"
)

// ColorsFile is the bridging source written next to the catalog owner.
const ColorsFile = "Colors.swift"

type appData struct {
	Name      string
	Namespace string
	Imports   []string
	Main      bool
	Access    string
}

type contentViewData struct {
	Name        string
	ColorImport string
	Accent      string
}

type moduleData struct {
	Name    string
	Role    modgraph.Role
	Imports []string
}

type colorAccessor struct {
	Name     string
	Accessor string
}

type colorsData struct {
	Module  string
	Catalog string
	Colors  []colorAccessor
}

// appStubs renders the entry point, view and test stub of the app.
func appStubs(r *tmpl.Renderer, m *model.ProjectModel) ([]artifact.Artifact, error) {
	name := m.Spec.Name
	app := appData{Name: name, Access: "public "}
	view := contentViewData{Name: name}

	if m.IsModular() {
		app = appData{
			Name:      name,
			Namespace: m.Naming.Resolve(modgraph.RoleApp),
			Imports:   moduleNames(m.AppDependencies()),
			Main:      true,
		}
		if m.HasColors() {
			view.ColorImport = m.ColorModule()
		}
	}
	if m.HasColors() {
		view.Accent = m.Spec.Colors[0].Accessor()
	}

	var out []artifact.Artifact
	for _, s := range []struct {
		path string
		name string
		data any
	}{
		{path.Join(m.AppSourcesDir(), name+"App.swift"), AppTemplate, app},
		{path.Join(m.AppSourcesDir(), "ContentView.swift"), ContentViewTemplate, view},
		{path.Join(m.AppTestsDir(), name+"Tests.swift"), AppTestsTemplate, map[string]string{"Name": name}},
	} {
		a, err := r.Artifact(s.path, s.name, s.data)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// moduleStubs renders the source and test stub of one local package.
func moduleStubs(r *tmpl.Renderer, m *model.ProjectModel, mod modgraph.Module) ([]artifact.Artifact, error) {
	src, err := r.Artifact(path.Join(m.PackageSourcesDir(mod), mod.Name+".swift"), ModuleTemplate, moduleData{
		Name:    mod.Name,
		Role:    mod.Role,
		Imports: moduleNames(m.Graph.Dependencies(mod.Role)),
	})
	if err != nil {
		return nil, err
	}
	test, err := r.Artifact(path.Join(m.PackageTestsDir(mod), mod.Name+"Tests.swift"), ModuleTestsTemplate,
		map[string]string{"Name": mod.Name})
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{src, test}, nil
}

// colorBridge renders Colors.swift; nil when there are no colors.
func colorBridge(r *tmpl.Renderer, m *model.ProjectModel) (*artifact.Artifact, error) {
	if !m.HasColors() {
		return nil, nil
	}
	data := colorsData{Module: m.ColorModule(), Catalog: assets.CatalogDir}
	for _, c := range m.Spec.Colors {
		data.Colors = append(data.Colors, colorAccessor{Name: c.Name, Accessor: c.Accessor()})
	}
	a, err := r.Artifact(path.Join(m.ColorSourcesDir(), ColorsFile), ColorsTemplate, data)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func moduleNames(mods []modgraph.Module) []string {
	names := make([]string, 0, len(mods))
	for _, mod := range mods {
		names = append(names, mod.Name)
	}
	return names
}
