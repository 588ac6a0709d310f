package model

import (
	"path"

	"github.com/NielsdaWheelz/scaffoldkit/internal/assets"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/modgraph"
)

// Layout is the project shape.
type Layout string

const (
	LayoutSingle  Layout = "single"
	LayoutModular Layout = "modular"
)

const (
	packagesDir  = "Packages"
	sourcesDir   = "Sources"
	resourcesDir = "Resources"
	testsDir     = "Tests"
)

// ProjectModel is the fully resolved generation plan. It is built once per
// run and only read afterwards.
type ProjectModel struct {
	Spec    ProjectSpec
	Graph   modgraph.Graph
	Modules []modgraph.Module
	Naming  modgraph.Naming
	Catalog *assets.Catalog
	Layout  Layout
}

// PackageRoot is a directory holding a SwiftPM package manifest.
type PackageRoot struct {
	Name string
	Dir  string
}

// Build validates spec and resolves the module graph and color catalog.
func Build(spec ProjectSpec) (*ProjectModel, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	graph := modgraph.Build(spec.Modular, spec.ModulePrefix, spec.Name)
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	if graph.Modular {
		for _, m := range graph.Modules {
			if m.Name == spec.Name {
				return nil, errors.NewWithDetails(errors.EValidation,
					"project name "+spec.Name+" collides with module "+m.Name+"; choose another name or prefix",
					map[string]string{"name": spec.Name, "module": m.Name})
			}
		}
	}

	catalog, err := assets.Build(spec.Colors)
	if err != nil {
		return nil, err
	}

	layout := LayoutSingle
	if graph.Modular {
		layout = LayoutModular
	}

	return &ProjectModel{
		Spec:    spec,
		Graph:   graph,
		Modules: graph.Modules,
		Naming:  graph.Naming,
		Catalog: catalog,
		Layout:  layout,
	}, nil
}

// IsModular reports whether the model uses the app + local packages layout.
func (m *ProjectModel) IsModular() bool { return m.Layout == LayoutModular }

// HasColors reports whether a catalog and color bridging file are generated.
func (m *ProjectModel) HasColors() bool { return m.Catalog != nil }

// AppSourcesDir is where the app entry point and view live.
func (m *ProjectModel) AppSourcesDir() string {
	if m.IsModular() {
		return sourcesDir
	}
	return path.Join(sourcesDir, m.Spec.Name)
}

// AppResourcesDir is the app's resource directory.
func (m *ProjectModel) AppResourcesDir() string {
	if m.IsModular() {
		return resourcesDir
	}
	return path.Join(m.AppSourcesDir(), resourcesDir)
}

// AppTestsDir is the app's unit test directory.
func (m *ProjectModel) AppTestsDir() string {
	return path.Join(testsDir, m.Spec.Name+"Tests")
}

// PackageDir is the root of a local package.
func (m *ProjectModel) PackageDir(mod modgraph.Module) string {
	return path.Join(packagesDir, mod.Name)
}

// PackageRef is the package path as written in the root manifests.
func (m *ProjectModel) PackageRef(mod modgraph.Module) string {
	return "./" + m.PackageDir(mod)
}

// PackageSourcesDir is the single target directory of a local package.
func (m *ProjectModel) PackageSourcesDir(mod modgraph.Module) string {
	return path.Join(m.PackageDir(mod), sourcesDir, mod.Name)
}

// PackageResourcesDir is the resource directory of a local package.
func (m *ProjectModel) PackageResourcesDir(mod modgraph.Module) string {
	return path.Join(m.PackageSourcesDir(mod), resourcesDir)
}

// PackageTestsDir is the test target directory of a local package.
func (m *ProjectModel) PackageTestsDir(mod modgraph.Module) string {
	return path.Join(m.PackageDir(mod), testsDir, mod.Name+"Tests")
}

// LocalPackages returns the non-app modules; empty for the single layout.
func (m *ProjectModel) LocalPackages() []modgraph.Module {
	return m.Graph.NonApp()
}

// AppDependencies returns the modules the app target links against.
func (m *ProjectModel) AppDependencies() []modgraph.Module {
	if !m.IsModular() {
		return nil
	}
	return m.Graph.Dependencies(modgraph.RoleApp)
}

// ColorModule is the module that owns the catalog and the bridging file:
// the UI module when modular, the single package otherwise.
func (m *ProjectModel) ColorModule() string {
	if ui, ok := m.uiModule(); ok {
		return ui.Name
	}
	return m.Spec.Name
}

// ColorSourcesDir is where Colors.swift is written.
func (m *ProjectModel) ColorSourcesDir() string {
	if ui, ok := m.uiModule(); ok {
		return m.PackageSourcesDir(ui)
	}
	return m.AppSourcesDir()
}

// ColorResourcesDir is where the catalog is written.
func (m *ProjectModel) ColorResourcesDir() string {
	if ui, ok := m.uiModule(); ok {
		return m.PackageResourcesDir(ui)
	}
	return m.AppResourcesDir()
}

func (m *ProjectModel) uiModule() (modgraph.Module, bool) {
	if !m.IsModular() {
		return modgraph.Module{}, false
	}
	return m.Graph.Module(modgraph.RoleUI)
}

// PackageRoots lists the directories holding a Package.swift: the output
// root for the single layout, every local package otherwise.
func (m *ProjectModel) PackageRoots() []PackageRoot {
	if !m.IsModular() {
		return []PackageRoot{{Name: m.Spec.Name, Dir: "."}}
	}
	var roots []PackageRoot
	for _, mod := range m.LocalPackages() {
		roots = append(roots, PackageRoot{Name: mod.Name, Dir: m.PackageDir(mod)})
	}
	return roots
}

// Skeleton returns the directories to create, module by module in
// topological order with the app last.
func (m *ProjectModel) Skeleton() []string {
	var dirs []string
	for _, mod := range m.Modules {
		if mod.IsApp() {
			continue
		}
		dirs = append(dirs,
			m.PackageSourcesDir(mod),
			m.PackageResourcesDir(mod),
			m.PackageTestsDir(mod),
		)
	}
	dirs = append(dirs, m.AppSourcesDir(), m.AppResourcesDir(), m.AppTestsDir())
	return dirs
}
