package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mapEnv is a simple map-backed Env implementation for testing.
type mapEnv map[string]string

func (m mapEnv) Get(key string) string {
	return m[key]
}

func TestConfigDir(t *testing.T) {
	home := filepath.FromSlash("/home/testuser")

	tests := []struct {
		name     string
		env      mapEnv
		isDarwin bool
		want     string
	}{
		{
			name:     "override (darwin)",
			env:      mapEnv{ConfigDirEnv: "/custom/config"},
			isDarwin: true,
			want:     "/custom/config",
		},
		{
			name:     "override (linux)",
			env:      mapEnv{ConfigDirEnv: "/custom/config"},
			isDarwin: false,
			want:     "/custom/config",
		},
		{
			name:     "darwin default ignores XDG",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: true,
			want:     filepath.FromSlash("/home/testuser/Library/Preferences/scaffoldkit"),
		},
		{
			name:     "XDG_CONFIG_HOME fallback (linux)",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     filepath.FromSlash("/xdg/config/scaffoldkit"),
		},
		{
			name:     "default fallback (linux)",
			env:      mapEnv{},
			isDarwin: false,
			want:     filepath.FromSlash("/home/testuser/.config/scaffoldkit"),
		},
		{
			name:     "override takes precedence over XDG",
			env:      mapEnv{ConfigDirEnv: "/override", "XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     "/override",
		},
		{
			name:     "tilde is literal",
			env:      mapEnv{ConfigDirEnv: "~/cfg"},
			isDarwin: false,
			want:     "~/cfg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigDirWithOS(tt.env, home, tt.isDarwin))
		})
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv("SCAFFOLDKIT_TEST_VAR", "value")
	assert.Equal(t, "value", OSEnv{}.Get("SCAFFOLDKIT_TEST_VAR"))
	assert.Equal(t, "", OSEnv{}.Get("SCAFFOLDKIT_TEST_UNSET_VAR"))
}
