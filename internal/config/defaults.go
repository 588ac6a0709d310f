package config

const (
	DefaultOrganizationID  = "com.example"
	DefaultPlatformVersion = "17.0"
	DefaultBackend         = "none"
)

// defaults returns the built-in values. They are loaded first and can be
// overridden by config.yaml and env vars.
func defaults() map[string]any {
	return map[string]any{
		"organization_id":  DefaultOrganizationID,
		"platform_version": DefaultPlatformVersion,
		"backend":          DefaultBackend,
		"tool_version":     "",
		"package_init":     false,
		"git_init":         false,

		"log.level":  "warn",
		"log.format": "text",
	}
}
