// Package version holds the build version, set at link time with
// -ldflags "-X github.com/NielsdaWheelz/scaffoldkit/internal/version.Version=v0.1.0".
package version

// Version is the scaffoldkit release.
var Version = "dev"
