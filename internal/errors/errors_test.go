package errors

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(EUsage, "test message")
	assert.Equal(t, "E_USAGE: test message", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(EIO, "write failed", cause)

	assert.Equal(t, "E_IO: write failed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil error", nil, ""},
		{"scaffold error", New(EValidation, "x"), EValidation},
		{"wrapped scaffold error", Wrap(EExternalTool, "y", errors.New("z")), EExternalTool},
		{"non-scaffold error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"E_USAGE", New(EUsage, "x"), 2},
		{"E_MALFORMED_COLOR_SPEC", New(EMalformedColorSpec, "x"), 1},
		{"non-scaffold error", errors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"E_USAGE", New(EUsage, "bad args"), "error_code: E_USAGE\nbad args\n"},
		{
			"details sorted by key",
			NewWithDetails(EValidation, "unsupported manifest backend", map[string]string{
				"value":   "cmake",
				"allowed": "tuist, xcodegen, none",
			}),
			"error_code: E_VALIDATION\nunsupported manifest backend\nallowed: tuist, xcodegen, none\nvalue: cmake\n",
		},
		{"plain error", errors.New("boom"), "boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Print(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewWithDetails_CopiesMap(t *testing.T) {
	details := map[string]string{"token": "#GGG=Red"}
	err := NewWithDetails(EMalformedColorSpec, "bad token", details)
	details["token"] = "modified"

	se, ok := AsScaffoldError(err)
	require.True(t, ok)
	assert.Equal(t, "#GGG=Red", se.Details["token"])
}

func TestNewWithDetails_NilDetails(t *testing.T) {
	se, ok := AsScaffoldError(NewWithDetails(EUsage, "test", nil))
	require.True(t, ok)
	assert.Nil(t, se.Details)
}

func TestWrapWithDetails(t *testing.T) {
	cause := errors.New("exit status 1")
	err := WrapWithDetails(EExternalTool, "swift package init failed", cause, map[string]string{"stderr": "boom"})

	se, ok := AsScaffoldError(err)
	require.True(t, ok)
	assert.Equal(t, cause, se.Cause)
	assert.Equal(t, "boom", se.Details["stderr"])
}

func TestAsScaffoldError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		se, ok := AsScaffoldError(New(EUsage, "test"))
		require.True(t, ok)
		assert.Equal(t, EUsage, se.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		se, ok := AsScaffoldError(errors.New("regular error"))
		assert.False(t, ok)
		assert.Nil(t, se)
	})

	t.Run("nil", func(t *testing.T) {
		se, ok := AsScaffoldError(nil)
		assert.False(t, ok)
		assert.Nil(t, se)
	})
}
