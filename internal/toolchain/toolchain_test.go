package toolchain

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/exec"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

type call struct {
	name string
	args []string
	dir  string
}

// stubRunner answers commands by "name args..." key; unknown commands fail
// to start.
type stubRunner struct {
	responses map[string]exec.CmdResult
	calls     []call
}

func newStubRunner() *stubRunner {
	return &stubRunner{responses: make(map[string]exec.CmdResult)}
}

func (s *stubRunner) set(cmd string, result exec.CmdResult) {
	s.responses[cmd] = result
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.calls = append(s.calls, call{name: name, args: args, dir: opts.Dir})
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if r, ok := s.responses[key]; ok {
		return r, nil
	}
	return exec.CmdResult{}, fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func TestResolveVersion_Explicit(t *testing.T) {
	cr := newStubRunner()
	res := ResolveVersion(context.Background(), cr, model.BackendTuist, " 4.1.0 ")
	assert.Equal(t, Resolution{Version: "4.1.0", Source: SourceExplicit}, res)
	assert.Empty(t, cr.calls)
}

func TestResolveVersion_Probe(t *testing.T) {
	cr := newStubRunner()
	cr.set("tuist version", exec.CmdResult{Stdout: "4.38.0\n"})
	cr.set("xcodegen --version", exec.CmdResult{Stdout: "Version: 2.40.1\n"})

	assert.Equal(t, Resolution{Version: "4.38.0", Source: SourceProbe},
		ResolveVersion(context.Background(), cr, model.BackendTuist, ""))
	assert.Equal(t, Resolution{Version: "2.40.1", Source: SourceProbe},
		ResolveVersion(context.Background(), cr, model.BackendXcodeGen, ""))
}

func TestResolveVersion_Fallback(t *testing.T) {
	cr := newStubRunner()
	assert.Equal(t, Resolution{Version: DefaultTuistVersion, Source: SourceDefault},
		ResolveVersion(context.Background(), cr, model.BackendTuist, ""))

	cr.set("xcodegen --version", exec.CmdResult{ExitCode: 1, Stderr: "boom"})
	assert.Equal(t, Resolution{Version: DefaultXcodeGenVersion, Source: SourceDefault},
		ResolveVersion(context.Background(), cr, model.BackendXcodeGen, ""))

	cr.set("tuist version", exec.CmdResult{Stdout: "no version here"})
	assert.Equal(t, DefaultTuistVersion, ResolveVersion(context.Background(), cr, model.BackendTuist, "").Version)
}

func TestResolveVersion_None(t *testing.T) {
	cr := newStubRunner()
	assert.Equal(t, Resolution{Source: SourceNone}, ResolveVersion(context.Background(), cr, model.BackendNone, ""))
	assert.Empty(t, cr.calls)
}

func TestInitPackage(t *testing.T) {
	cr := newStubRunner()
	cr.set("swift package init --type library --name AcmeCore", exec.CmdResult{Stdout: "Creating library package"})

	require.NoError(t, InitPackage(context.Background(), cr, "/out/Packages/AcmeCore", "AcmeCore"))
	require.Len(t, cr.calls, 1)
	assert.Equal(t, "/out/Packages/AcmeCore", cr.calls[0].dir)
}

func TestInitPackage_Failure(t *testing.T) {
	cr := newStubRunner()
	cr.set("swift package init --type library --name Widgets", exec.CmdResult{
		ExitCode: 1,
		Stderr:   "error: a manifest file already exists in this directory\n",
	})

	err := InitPackage(context.Background(), cr, "/out", "Widgets")
	require.Error(t, err)
	se, ok := errors.AsScaffoldError(err)
	require.True(t, ok)
	assert.Equal(t, errors.EExternalTool, se.Code)
	assert.Equal(t, "error: a manifest file already exists in this directory", se.Details["diagnostics"])
}

func TestInitPackage_Missing(t *testing.T) {
	err := InitPackage(context.Background(), newStubRunner(), "/out", "Widgets")
	require.Error(t, err)
	assert.Equal(t, errors.EExternalTool, errors.GetCode(err))
}

func TestCheck(t *testing.T) {
	cr := newStubRunner()
	cr.set("swift --version", exec.CmdResult{Stdout: "Apple Swift version 5.10 (swiftlang-5.10.0.13 clang-1500.3.9.4)\nTarget: arm64-apple-macosx14.0\n"})
	cr.set("tuist version", exec.CmdResult{Stdout: "4.38.0\n"})

	got := Check(context.Background(), cr)
	require.Len(t, got, 3)
	assert.Equal(t, ToolStatus{Name: "swift", Found: true, Version: "5.10"}, got[0])
	assert.Equal(t, ToolStatus{Name: "tuist", Found: true, Version: "4.38.0"}, got[1])
	assert.Equal(t, ToolStatus{Name: "xcodegen"}, got[2])
}
