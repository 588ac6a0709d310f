package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

func TestPlan_AddDirDeduplicates(t *testing.T) {
	var p Plan
	p.AddDir("Sources")
	p.AddDir("Tests")
	p.AddDir("Sources")

	assert.Equal(t, []string{"Sources", "Tests"}, p.Dirs)
}

func TestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"ok", []string{"Package.swift", "Sources/App/App.swift"}, false},
		{"duplicate", []string{"Package.swift", "Package.swift"}, true},
		{"absolute", []string{"/etc/passwd"}, true},
		{"escapes root", []string{"../x"}, true},
		{"unclean", []string{"Sources//App.swift"}, true},
		{"empty", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Plan
			for _, path := range tt.paths {
				p.Add(Text(path, "x"))
			}
			err := p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.EInternal, errors.GetCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlan_FindAndPaths(t *testing.T) {
	var p Plan
	p.Add(Text("b.txt", "b"), Text("a.txt", "a"))

	a, ok := p.Find("a.txt")
	require.True(t, ok)
	assert.Equal(t, "a", string(a.Content))
	assert.Equal(t, FileMode, a.Mode)

	_, ok = p.Find("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"b.txt", "a.txt"}, p.Paths())
}

func TestPlan_Replace(t *testing.T) {
	var p Plan
	p.Add(Text("a.txt", "a"), Text("b.txt", "b"))

	assert.True(t, p.Replace(Text("b.txt", "new")))
	assert.False(t, p.Replace(Text("c.txt", "c")))

	b, ok := p.Find("b.txt")
	require.True(t, ok)
	assert.Equal(t, "new", string(b.Content))
	assert.Equal(t, []string{"a.txt", "b.txt"}, p.Paths())
}
