// Package model holds the project specification and the resolved
// generation plan that every renderer reads.
package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/NielsdaWheelz/scaffoldkit/internal/color"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

var (
	identRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	orgRe     = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*$`)
	versionRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}$`)
)

// ProjectSpec is the validated input of one run.
type ProjectSpec struct {
	Name            string
	OutputRoot      string
	OrganizationID  string
	PlatformVersion string
	ToolVersion     string
	Modular         bool
	ModulePrefix    string
	Colors          []color.Entry
	Backend         Backend
}

// Validate checks every field that ends up inside generated files.
// PlatformVersion must already be normalized.
func (s ProjectSpec) Validate() error {
	if !identRe.MatchString(s.Name) {
		return invalid("name", s.Name, "must start with a letter and contain only letters, digits and underscores")
	}
	if s.OutputRoot == "" {
		return invalid("output", s.OutputRoot, "must not be empty")
	}
	if !orgRe.MatchString(s.OrganizationID) {
		return invalid("organization_id", s.OrganizationID, "must be a dotted identifier such as com.example")
	}
	if !versionRe.MatchString(s.PlatformVersion) {
		return invalid("platform_version", s.PlatformVersion, "must look like 17 or 17.0 or 17.0.1")
	}
	if s.ModulePrefix != "" && !identRe.MatchString(s.ModulePrefix) {
		return invalid("prefix", s.ModulePrefix, "must start with a letter and contain only letters, digits and underscores")
	}
	switch s.Backend {
	case BackendTuist, BackendXcodeGen, BackendNone:
	default:
		// Backend must already be canonical; see ParseBackend.
		return UnsupportedBackend(string(s.Backend))
	}
	return nil
}

// NormalizePlatformVersion strips any leading non-digit prefix ("v17.0",
// "iOS17.0") and validates the remainder.
func NormalizePlatformVersion(v string) (string, error) {
	trimmed := strings.TrimLeftFunc(strings.TrimSpace(v), func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if !versionRe.MatchString(trimmed) {
		return "", invalid("platform_version", v, "must look like 17 or 17.0 or 17.0.1")
	}
	return trimmed, nil
}

// BundleID is the application bundle identifier.
func (s ProjectSpec) BundleID() string {
	return s.OrganizationID + "." + s.Name
}

// TestBundleID is the unit-test bundle identifier.
func (s ProjectSpec) TestBundleID() string {
	return s.BundleID() + ".Tests"
}

func invalid(field, value, rule string) error {
	return errors.NewWithDetails(errors.EValidation,
		"invalid "+field+" \""+value+"\": "+rule,
		map[string]string{"field": field, "value": value})
}
