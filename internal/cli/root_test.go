package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizunashi/wfcheck/internal/app"
)

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	err := root.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Checks:")
	assert.Contains(t, out, "Setup:")
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "rules")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_TUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(newTestContainer(), "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"tui"})

	err := root.Execute()

	require.NoError(t, err)
	assert.True(t, called)
}

func TestNewRootCommand_CheckViaRoot(t *testing.T) {
	root := NewRootCommand(newTestContainer(), "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"check", "--only", "guides"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "guide-heading-order")
}
