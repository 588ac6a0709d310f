package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Summary {
	return &Summary{
		Name:              "Widgets",
		Output:            "/tmp/Widgets",
		Layout:            "modular",
		Backend:           "tuist",
		ToolVersion:       "4.38.2",
		ToolVersionSource: "default",
		BundleID:          "com.example.Widgets",
		Modules:           []string{"Util", "Core", "UI", "App"},
		Colors:            []string{"Red"},
		Files:             []string{"Package.swift", "Project.swift"},
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sample()))

	out := buf.String()
	assert.Contains(t, out, "Scaffolded Widgets\n")
	assert.Contains(t, out, "output: /tmp/Widgets\n")
	assert.Contains(t, out, "layout: modular\n")
	assert.Contains(t, out, "backend: tuist\n")
	assert.Contains(t, out, "tool_version: 4.38.2 (default)\n")
	assert.Contains(t, out, "modules: Util, Core, UI, App\n")
	assert.Contains(t, out, "colors: Red\n")
	assert.Contains(t, out, "Files (2)\n  Package.swift\n  Project.swift\n")
	assert.Contains(t, out, "status: ok\n")
	assert.NotContains(t, out, "\x1b[", "no escape codes when not a terminal")
	assert.NotContains(t, out, "git:")
}

func TestWriteSummary_DryRun(t *testing.T) {
	s := sample()
	s.DryRun = true
	s.Colors = nil
	s.ToolVersion = ""

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "Would scaffold Widgets\n")
	assert.Contains(t, out, "colors: none\n")
	assert.Contains(t, out, "dry_run: true\n")
	assert.NotContains(t, out, "status: ok")
	assert.NotContains(t, out, "tool_version")
}

func TestWriteSummaryJSON(t *testing.T) {
	s := sample()
	s.Git = "created"

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryJSON(&buf, s))

	var env struct {
		SchemaVersion string         `json:"schema_version"`
		Data          map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, "1.0", env.SchemaVersion)
	assert.Equal(t, "Widgets", env.Data["name"])
	assert.Equal(t, "created", env.Data["git"])
	assert.Equal(t, []any{}, env.Data["dirs"], "nil lists encode as []")
	assert.Equal(t, []any{"Package.swift", "Project.swift"}, env.Data["files"])
}
