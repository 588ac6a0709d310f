package modgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Single(t *testing.T) {
	g := Build(false, "Acme", "Widgets")

	require.Len(t, g.Modules, 1)
	assert.False(t, g.Modular)
	assert.Equal(t, RoleApp, g.Modules[0].Role)
	assert.Equal(t, "Widgets", g.Modules[0].Name)
	assert.Empty(t, g.Modules[0].DependsOn)
	assert.Empty(t, g.NonApp())
	assert.NoError(t, g.Validate())
}

func TestBuild_Modular(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"Util", "Core", "UI", "App"}},
		{"   ", []string{"Util", "Core", "UI", "App"}},
		{"Acme", []string{"AcmeUtil", "AcmeCore", "AcmeUI", "AcmeApp"}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			g := Build(true, tt.prefix, "Widgets")
			assert.True(t, g.Modular)
			assert.Equal(t, tt.want, g.Names())
			assert.NoError(t, g.Validate())
		})
	}
}

func TestBuild_DependenciesFollowRoles(t *testing.T) {
	g := Build(true, "P", "Widgets")

	names := func(ms []Module) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.Name)
		}
		return out
	}

	assert.Empty(t, g.Dependencies(RoleUtil))
	assert.Equal(t, []string{"PUtil"}, names(g.Dependencies(RoleCore)))
	assert.Equal(t, []string{"PUtil"}, names(g.Dependencies(RoleUI)))
	assert.ElementsMatch(t, []string{"PCore", "PUI", "PUtil"}, names(g.Dependencies(RoleApp)))
	assert.Equal(t, []string{"PUtil", "PCore", "PUI"}, names(g.NonApp()))
}

func TestBuild_TopologicalOrder(t *testing.T) {
	g := Build(true, "", "Widgets")

	pos := make(map[Role]int)
	for i, m := range g.Modules {
		pos[m.Role] = i
	}
	for _, m := range g.Modules {
		for _, d := range m.DependsOn {
			assert.Less(t, pos[d], pos[m.Role], "%s must precede %s", d, m.Role)
		}
	}
	assert.Equal(t, RoleUtil, g.Modules[0].Role)
	assert.Equal(t, RoleApp, g.Modules[len(g.Modules)-1].Role)
}

func TestValidate_RejectsBadOrder(t *testing.T) {
	g := Build(true, "", "Widgets")
	g.Modules[0], g.Modules[1] = g.Modules[1], g.Modules[0]
	assert.Error(t, g.Validate())

	g = Build(true, "", "Widgets")
	g.Modules[1].Name = g.Modules[0].Name
	assert.Error(t, g.Validate())
}

func TestNaming(t *testing.T) {
	n := NewNaming("")
	assert.Equal(t, "UI", n.Resolve(RoleUI))

	n = NewNaming("  ")
	assert.Equal(t, "Core", n.Resolve(RoleCore))

	n = NewNaming("Kit")
	assert.Equal(t, "KitCore", n.Resolve(RoleCore))
}

func TestRole_CanonicalName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUtil, "Util"},
		{RoleCore, "Core"},
		{RoleUI, "UI"},
		{RoleApp, "App"},
		{Role("widgets"), "Widgets"},
		{Role(""), ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, tt.role.CanonicalName())
			})
		})
	}
}
