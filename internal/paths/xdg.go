// Package paths resolves the scaffoldkit config directory following XDG
// conventions, with the macOS location taking precedence on darwin.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "scaffoldkit"
	// ConfigDirEnv overrides the config directory.
	ConfigDirEnv = "SCAFFOLDKIT_CONFIG_DIR"
	// ConfigFile is the user defaults file inside the config directory.
	ConfigFile = "config.yaml"
)

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// OSEnv reads the process environment.
type OSEnv struct{}

// Get implements Env.
func (OSEnv) Get(key string) string {
	return os.Getenv(key)
}

// IsDarwin returns true if the current OS is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ConfigDir resolves the config directory:
//  1. SCAFFOLDKIT_CONFIG_DIR (if set)
//  2. macOS: ~/Library/Preferences/scaffoldkit
//  3. XDG_CONFIG_HOME/scaffoldkit (if set)
//  4. ~/.config/scaffoldkit
//
// homeDir must be absolute. Nothing is created on disk and ~ inside env
// vars is taken literally.
func ConfigDir(env Env, homeDir string) string {
	return ConfigDirWithOS(env, homeDir, IsDarwin())
}

// ConfigDirWithOS is ConfigDir with an explicit OS flag for testing.
func ConfigDirWithOS(env Env, homeDir string, isDarwin bool) string {
	if v := env.Get(ConfigDirEnv); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Preferences", appName)
	}
	if v := env.Get("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName)
	}
	return filepath.Join(homeDir, ".config", appName)
}
