// Package config loads the user's default answers for `scaffoldkit new`.
// Values are layered: built-in defaults -> config.yaml -> SCAFFOLDKIT_* env
// vars. Command-line flags are applied by the caller on top.
package config

// Config holds the user defaults.
type Config struct {
	OrganizationID  string    `koanf:"organization_id"`
	PlatformVersion string    `koanf:"platform_version"`
	Backend         string    `koanf:"backend"`
	ToolVersion     string    `koanf:"tool_version"`
	PackageInit     bool      `koanf:"package_init"`
	GitInit         bool      `koanf:"git_init"`
	Log             LogConfig `koanf:"log"`

	// File is the config file that was read, empty when none existed.
	File string `koanf:"-"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
