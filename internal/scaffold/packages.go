package scaffold

import (
	"path"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
	"github.com/NielsdaWheelz/scaffoldkit/internal/modgraph"
	"github.com/NielsdaWheelz/scaffoldkit/internal/tmpl"
)

// PackageManifest is the SwiftPM manifest file name.
const PackageManifest = "Package.swift"

type packageDep struct {
	Name string
	Path string
}

type packageData struct {
	ToolsVersion    string
	Name            string
	PlatformVersion string
	Library         bool
	Executable      bool
	Dependencies    []packageDep
	SourcePath      string
	TestPath        string
	Resources       bool
}

// rootPackage renders the Package.swift at the output root. The single
// layout is a library; the modular layout is an executable app target
// that links every local package.
func rootPackage(r *tmpl.Renderer, m *model.ProjectModel) (artifact.Artifact, error) {
	data := packageData{
		ToolsVersion:    SwiftToolsVersion,
		Name:            m.Spec.Name,
		PlatformVersion: m.Spec.PlatformVersion,
	}
	if m.IsModular() {
		data.Executable = true
		data.SourcePath = m.AppSourcesDir()
		data.TestPath = m.AppTestsDir()
		for _, dep := range m.AppDependencies() {
			data.Dependencies = append(data.Dependencies, packageDep{Name: dep.Name, Path: m.PackageRef(dep)})
		}
	} else {
		data.Library = true
		data.Resources = m.HasColors()
	}
	return r.Artifact(PackageManifest, PackageTemplate, data)
}

// localPackage renders Packages/<M>/Package.swift. Dependencies are
// sibling packages referenced by relative path.
func localPackage(r *tmpl.Renderer, m *model.ProjectModel, mod modgraph.Module) (artifact.Artifact, error) {
	data := packageData{
		ToolsVersion:    SwiftToolsVersion,
		Name:            mod.Name,
		PlatformVersion: m.Spec.PlatformVersion,
		Library:         true,
		Resources:       mod.Role == modgraph.RoleUI && m.HasColors(),
	}
	for _, dep := range m.Graph.Dependencies(mod.Role) {
		data.Dependencies = append(data.Dependencies, packageDep{Name: dep.Name, Path: "../" + dep.Name})
	}
	return r.Artifact(path.Join(m.PackageDir(mod), PackageManifest), PackageTemplate, data)
}
