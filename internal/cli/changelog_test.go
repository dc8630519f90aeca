package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangelogCommand_NotFound(t *testing.T) {
	cmd := newChangelogCommand(newTestContainer())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "CHANGELOG.md not found")
}

func TestNewScriptsCommand_ReportsFindings(t *testing.T) {
	cmd := newScriptsCommand(newTestContainer())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, buf.String(), "script-header")
}

func TestNewWorkflowsCommand_CleanRepo(t *testing.T) {
	cmd := newWorkflowsCommand(newTestContainer())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no findings")
}

func TestNewGuidesCommand_ExplicitPath(t *testing.T) {
	cmd := newGuidesCommand(newTestContainer())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"docs/workflows.md"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "guide-heading-order")
}
