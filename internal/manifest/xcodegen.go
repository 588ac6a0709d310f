package manifest

import (
	"bytes"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

const (
	// XcodeGenProjectFile is the XcodeGen manifest name.
	XcodeGenProjectFile = "project.yml"
	// InfoPlistFile is the platform descriptor emitted alongside it.
	InfoPlistFile = "Info.plist"
	platformIOS   = "iOS"
)

// XcodeGenProject is the subset of the project.yml schema we emit.
type XcodeGenProject struct {
	Name     string                     `yaml:"name"`
	Options  XcodeGenOptions            `yaml:"options"`
	Packages map[string]XcodeGenPackage `yaml:"packages,omitempty"`
	Targets  map[string]XcodeGenTarget  `yaml:"targets"`
}

// XcodeGenOptions holds project-wide options.
type XcodeGenOptions struct {
	BundleIDPrefix         string            `yaml:"bundleIdPrefix"`
	DeploymentTarget       map[string]string `yaml:"deploymentTarget"`
	MinimumXcodeGenVersion string            `yaml:"minimumXcodeGenVersion,omitempty"`
}

// XcodeGenPackage is a local Swift package reference.
type XcodeGenPackage struct {
	Path string `yaml:"path"`
}

// XcodeGenTarget is one target.
type XcodeGenTarget struct {
	Type             string               `yaml:"type"`
	Platform         string               `yaml:"platform"`
	DeploymentTarget string               `yaml:"deploymentTarget"`
	Sources          []XcodeGenSource     `yaml:"sources"`
	Info             *XcodeGenInfo        `yaml:"info,omitempty"`
	Dependencies     []XcodeGenDependency `yaml:"dependencies,omitempty"`
	Settings         XcodeGenSettings     `yaml:"settings"`
}

// XcodeGenSource is a source directory.
type XcodeGenSource struct {
	Path string `yaml:"path"`
}

// XcodeGenInfo points at the target's Info.plist.
type XcodeGenInfo struct {
	Path string `yaml:"path"`
}

// XcodeGenDependency is either a target or a package product dependency.
type XcodeGenDependency struct {
	Target  string `yaml:"target,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// XcodeGenSettings holds build settings.
type XcodeGenSettings struct {
	Base map[string]string `yaml:"base"`
}

type plistData struct {
	Name            string
	BundleID        string
	PackageType     string
	PlatformVersion string
	App             bool
}

// XcodeGenSingle renders a framework target, its unit tests and the
// framework's Info.plist at the output root. The asset catalog lives under
// the sources directory, so the single sources entry already covers it.
func XcodeGenSingle(m *model.ProjectModel) ([]artifact.Artifact, error) {
	plistPath := InfoPlistFile
	main := xcodeGenTarget(m, "framework", m.AppSourcesDir())
	main.Info = &XcodeGenInfo{Path: plistPath}

	return xcodeGenArtifacts(xcodeGenProject(m, main, nil), plistPath, plistData{
		Name:            m.Spec.Name,
		BundleID:        m.Spec.BundleID(),
		PackageType:     "FMWK",
		PlatformVersion: m.Spec.PlatformVersion,
	})
}

// XcodeGenModular renders an application target that depends on every
// local package, plus Resources/Info.plist.
func XcodeGenModular(m *model.ProjectModel) ([]artifact.Artifact, error) {
	plistPath := path.Join(m.AppResourcesDir(), InfoPlistFile)
	main := xcodeGenTarget(m, "application", m.AppSourcesDir())
	main.Info = &XcodeGenInfo{Path: plistPath}

	packages := make(map[string]XcodeGenPackage)
	for _, dep := range m.AppDependencies() {
		packages[dep.Name] = XcodeGenPackage{Path: m.PackageRef(dep)}
		main.Dependencies = append(main.Dependencies, XcodeGenDependency{Package: dep.Name})
	}

	return xcodeGenArtifacts(xcodeGenProject(m, main, packages), plistPath, plistData{
		Name:            m.Spec.Name,
		BundleID:        m.Spec.BundleID(),
		PackageType:     "APPL",
		PlatformVersion: m.Spec.PlatformVersion,
		App:             true,
	})
}

func xcodeGenTarget(m *model.ProjectModel, kind, sources string) XcodeGenTarget {
	return XcodeGenTarget{
		Type:             kind,
		Platform:         platformIOS,
		DeploymentTarget: m.Spec.PlatformVersion,
		Sources:          []XcodeGenSource{{Path: sources}},
		Settings: XcodeGenSettings{Base: map[string]string{
			"PRODUCT_BUNDLE_IDENTIFIER": m.Spec.BundleID(),
		}},
	}
}

func xcodeGenProject(m *model.ProjectModel, main XcodeGenTarget, packages map[string]XcodeGenPackage) XcodeGenProject {
	tests := XcodeGenTarget{
		Type:             "bundle.unit-test",
		Platform:         platformIOS,
		DeploymentTarget: m.Spec.PlatformVersion,
		Sources:          []XcodeGenSource{{Path: m.AppTestsDir()}},
		Dependencies:     []XcodeGenDependency{{Target: m.Spec.Name}},
		Settings: XcodeGenSettings{Base: map[string]string{
			"PRODUCT_BUNDLE_IDENTIFIER": m.Spec.TestBundleID(),
			"GENERATE_INFOPLIST_FILE":   "YES",
		}},
	}

	return XcodeGenProject{
		Name: m.Spec.Name,
		Options: XcodeGenOptions{
			BundleIDPrefix:         m.Spec.OrganizationID,
			DeploymentTarget:       map[string]string{platformIOS: m.Spec.PlatformVersion},
			MinimumXcodeGenVersion: m.Spec.ToolVersion,
		},
		Packages: packages,
		Targets: map[string]XcodeGenTarget{
			m.Spec.Name:           main,
			m.Spec.Name + "Tests": tests,
		},
	}
}

func xcodeGenArtifacts(project XcodeGenProject, plistPath string, plist plistData) ([]artifact.Artifact, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(project); err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to encode "+XcodeGenProjectFile, err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to encode "+XcodeGenProjectFile, err)
	}

	r, err := templates()
	if err != nil {
		return nil, err
	}
	info, err := r.Artifact(plistPath, "info.plist.tmpl", plist)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{artifact.New(XcodeGenProjectFile, buf.Bytes()), info}, nil
}
