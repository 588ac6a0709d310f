package manifest

import (
	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

const (
	// TuistProjectFile is the Tuist manifest name.
	TuistProjectFile = "Project.swift"
	// TuistVersionFile pins the Tuist version for the project.
	TuistVersionFile = ".tuist-version"
)

type tuistPackage struct {
	Name string
	Path string
}

type tuistData struct {
	Name            string
	BundleID        string
	TestBundleID    string
	PlatformVersion string
	Sources         string
	Resources       string
	TestSources     string
	Packages        []tuistPackage
}

// TuistSingle renders a framework target plus its unit tests.
func TuistSingle(m *model.ProjectModel) ([]artifact.Artifact, error) {
	r, err := templates()
	if err != nil {
		return nil, err
	}

	data := tuistData{
		Name:            m.Spec.Name,
		BundleID:        m.Spec.BundleID(),
		TestBundleID:    m.Spec.TestBundleID(),
		PlatformVersion: m.Spec.PlatformVersion,
		Sources:         m.AppSourcesDir(),
		TestSources:     m.AppTestsDir(),
	}
	if m.HasColors() {
		data.Resources = m.AppResourcesDir()
	}

	project, err := r.Artifact(TuistProjectFile, "tuist_single.swift.tmpl", data)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{project, tuistVersion(m)}, nil
}

// TuistModular renders an app target that links every local package.
func TuistModular(m *model.ProjectModel) ([]artifact.Artifact, error) {
	r, err := templates()
	if err != nil {
		return nil, err
	}

	data := tuistData{
		Name:            m.Spec.Name,
		BundleID:        m.Spec.BundleID(),
		TestBundleID:    m.Spec.TestBundleID(),
		PlatformVersion: m.Spec.PlatformVersion,
		Sources:         m.AppSourcesDir(),
		Resources:       m.AppResourcesDir(),
		TestSources:     m.AppTestsDir(),
	}
	for _, dep := range m.AppDependencies() {
		data.Packages = append(data.Packages, tuistPackage{Name: dep.Name, Path: m.PackageRef(dep)})
	}

	project, err := r.Artifact(TuistProjectFile, "tuist_modular.swift.tmpl", data)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{project, tuistVersion(m)}, nil
}

func tuistVersion(m *model.ProjectModel) artifact.Artifact {
	return artifact.Text(TuistVersionFile, m.Spec.ToolVersion+"\n")
}
