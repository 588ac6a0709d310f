package exec

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scerrors "github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewRealRunner().Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, result.ExitCode)
		})
	}
}

func TestRealRunner_StdoutStderr(t *testing.T) {
	result, err := NewRealRunner().Run(context.Background(), "sh", []string{"-c", "echo stdout; echo stderr >&2"}, RunOpts{})
	require.NoError(t, err)

	assert.Contains(t, result.Stdout, "stdout")
	assert.Contains(t, result.Stderr, "stderr")
}

func TestRealRunner_StartFailure(t *testing.T) {
	_, err := NewRealRunner().Run(context.Background(), "no_such_command_abc123", nil, RunOpts{})
	assert.Error(t, err)
}

func TestRealRunner_Dir(t *testing.T) {
	dir := t.TempDir()
	result, err := NewRealRunner().Run(context.Background(), "sh", []string{"-c", "pwd"}, RunOpts{Dir: dir})
	require.NoError(t, err)

	// macOS resolves temp dirs through /private
	assert.True(t, strings.HasSuffix(strings.TrimSpace(result.Stdout), strings.TrimPrefix(dir, "/private")))
}

func TestRealRunner_Env(t *testing.T) {
	result, err := NewRealRunner().Run(context.Background(), "sh", []string{"-c", "echo $TEST_VAR"}, RunOpts{
		Env: map[string]string{"TEST_VAR": "hello_world"},
	})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "hello_world")
}

type fixedRunner struct {
	result CmdResult
	err    error
}

func (f fixedRunner) Run(context.Context, string, []string, RunOpts) (CmdResult, error) {
	return f.result, f.err
}

func TestRunChecked(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res, err := RunChecked(ctx, fixedRunner{result: CmdResult{Stdout: "ok"}}, "swift", []string{"--version"}, RunOpts{})
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Stdout)
	})

	t.Run("non-zero exit carries stderr", func(t *testing.T) {
		_, err := RunChecked(ctx, fixedRunner{result: CmdResult{ExitCode: 1, Stderr: "error: package exists\n"}},
			"swift", []string{"package", "init"}, RunOpts{})
		require.Error(t, err)

		se, ok := scerrors.AsScaffoldError(err)
		require.True(t, ok)
		assert.Equal(t, scerrors.EExternalTool, se.Code)
		assert.Equal(t, "error: package exists", se.Details["diagnostics"])
		assert.Equal(t, "swift package init", se.Details["command"])
		assert.Contains(t, se.Msg, "status 1")
	})

	t.Run("falls back to stdout diagnostics", func(t *testing.T) {
		_, err := RunChecked(ctx, fixedRunner{result: CmdResult{ExitCode: 3, Stdout: "usage"}}, "tuist", nil, RunOpts{})
		se, ok := scerrors.AsScaffoldError(err)
		require.True(t, ok)
		assert.Equal(t, "usage", se.Details["diagnostics"])
	})

	t.Run("start failure", func(t *testing.T) {
		cause := errors.New("executable file not found")
		_, err := RunChecked(ctx, fixedRunner{err: cause}, "xcodegen", []string{"--version"}, RunOpts{})
		assert.Equal(t, scerrors.EExternalTool, scerrors.GetCode(err))
		assert.ErrorIs(t, err, cause)
	})
}
