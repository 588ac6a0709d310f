// Package scaffold renders the Swift sources, SwiftPM manifests and
// ignore file of a generated project.
package scaffold

import (
	"embed"
	"sync"

	"github.com/NielsdaWheelz/scaffoldkit/internal/tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names.
const (
	AppTemplate         = "app.swift.tmpl"
	ContentViewTemplate = "content_view.swift.tmpl"
	AppTestsTemplate    = "app_tests.swift.tmpl"
	ModuleTemplate      = "module.swift.tmpl"
	ModuleTestsTemplate = "module_tests.swift.tmpl"
	ColorsTemplate      = "colors.swift.tmpl"
	PackageTemplate     = "package.swift.tmpl"
	GitignoreTemplate   = "gitignore.tmpl"
)

// SwiftToolsVersion is written into every Package.swift.
const SwiftToolsVersion = "5.9"

var (
	rendererOnce sync.Once
	renderer     *tmpl.Renderer
	rendererErr  error
)

// NewRenderer parses the embedded templates.
func NewRenderer() (*tmpl.Renderer, error) {
	return tmpl.New(templateFS, "templates/*.tmpl")
}

func defaultRenderer() (*tmpl.Renderer, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = NewRenderer()
	})
	return renderer, rendererErr
}
