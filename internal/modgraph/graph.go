// Package modgraph computes the fixed module graph of a modular project
// (Util → Core/UI → App) and owns the naming policy for module names.
package modgraph

import (
	"fmt"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// Role is one of the fixed module roles.
type Role string

const (
	RoleUtil Role = "util"
	RoleCore Role = "core"
	RoleUI   Role = "ui"
	RoleApp  Role = "app"
)

// roleOrder is the canonical topological order, leaves first.
var roleOrder = []Role{RoleUtil, RoleCore, RoleUI, RoleApp}

var roleDeps = map[Role][]Role{
	RoleUtil: nil,
	RoleCore: {RoleUtil},
	RoleUI:   {RoleUtil},
	RoleApp:  {RoleCore, RoleUI, RoleUtil},
}

// CanonicalName returns the capitalized role name used in module names.
func (r Role) CanonicalName() string {
	switch r {
	case RoleUtil:
		return "Util"
	case RoleCore:
		return "Core"
	case RoleUI:
		return "UI"
	case RoleApp:
		return "App"
	case "":
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// Naming is the module-name policy for one run. It is computed once and
// every renderer resolves names through it.
type Naming struct {
	prefix string
}

// NewNaming builds the policy. An empty (or blank) prefix means no prefix.
func NewNaming(prefix string) Naming {
	return Naming{prefix: strings.TrimSpace(prefix)}
}

// Resolve returns the module name for a role.
func (n Naming) Resolve(r Role) string {
	return n.prefix + r.CanonicalName()
}

// Module is one node of the graph.
type Module struct {
	Role      Role
	Name      string
	DependsOn []Role
}

// IsApp reports whether m is the app role.
func (m Module) IsApp() bool { return m.Role == RoleApp }

// Graph is the ordered module list for a run.
type Graph struct {
	Naming  Naming
	Modular bool
	Modules []Module
}

// Build returns the module graph. Without modular layout the graph holds a
// single implicit app module with no dependencies, named by the caller's
// package (appName). With modular layout it holds util, core, ui and app in
// topological order.
func Build(modular bool, prefix, appName string) Graph {
	naming := NewNaming(prefix)
	if !modular {
		return Graph{
			Naming:  naming,
			Modules: []Module{{Role: RoleApp, Name: appName}},
		}
	}

	modules := make([]Module, 0, len(roleOrder))
	for _, r := range roleOrder {
		deps := append([]Role(nil), roleDeps[r]...)
		modules = append(modules, Module{Role: r, Name: naming.Resolve(r), DependsOn: deps})
	}
	return Graph{Naming: naming, Modular: true, Modules: modules}
}

// Module returns the module for a role.
func (g Graph) Module(r Role) (Module, bool) {
	for _, m := range g.Modules {
		if m.Role == r {
			return m, true
		}
	}
	return Module{}, false
}

// NonApp returns every module except the app, in graph order.
func (g Graph) NonApp() []Module {
	var out []Module
	for _, m := range g.Modules {
		if !m.IsApp() {
			out = append(out, m)
		}
	}
	return out
}

// Dependencies returns the modules that r depends on, in graph order.
func (g Graph) Dependencies(r Role) []Module {
	m, ok := g.Module(r)
	if !ok {
		return nil
	}
	want := make(map[Role]bool, len(m.DependsOn))
	for _, d := range m.DependsOn {
		want[d] = true
	}
	var out []Module
	for _, dep := range g.Modules {
		if want[dep.Role] {
			out = append(out, dep)
		}
	}
	return out
}

// Names returns the resolved names in graph order.
func (g Graph) Names() []string {
	out := make([]string, 0, len(g.Modules))
	for _, m := range g.Modules {
		out = append(out, m.Name)
	}
	return out
}

// Validate checks that names are unique and that every module comes after
// all of its dependencies, which also rules out cycles.
func (g Graph) Validate() error {
	seen := make(map[Role]bool, len(g.Modules))
	names := make(map[string]bool, len(g.Modules))
	for _, m := range g.Modules {
		if names[m.Name] {
			return errors.New(errors.EInternal, "duplicate module name "+m.Name)
		}
		names[m.Name] = true
		for _, d := range m.DependsOn {
			if !seen[d] {
				return errors.New(errors.EInternal,
					fmt.Sprintf("module %s is ordered before its dependency %s", m.Name, g.Naming.Resolve(d)))
			}
		}
		seen[m.Role] = true
	}
	return nil
}
