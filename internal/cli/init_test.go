package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/testutil"
)

func containerWithManager(manager *testutil.MockConfigManager) *app.Container {
	return app.NewWithDeps(
		app.Config{RepoRoot: "/repo"},
		testutil.NewMockFinder(),
		&testutil.MockDocParser{},
		&testutil.MockWorkflowParser{},
		&testutil.MockScriptScanner{},
		&testutil.MockConfigLoader{},
		manager,
		&testutil.MockClock{NowTime: time.Now()},
		&testutil.MockLogger{},
	)
}

func TestNewInitCommand_WritesRepoConfig(t *testing.T) {
	manager := &testutil.MockConfigManager{Path: "/repo/wfcheck.toml"}
	cmd := newInitCommand(containerWithManager(manager))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote /repo/wfcheck.toml")
	assert.True(t, manager.Called)
	assert.False(t, manager.Global)
}

func TestNewInitCommand_Global(t *testing.T) {
	manager := &testutil.MockConfigManager{Path: "/home/u/.config/wfcheck/wfcheck.toml"}
	cmd := newInitCommand(containerWithManager(manager))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--global"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.True(t, manager.Global)
}

func TestNewInitCommand_AlreadyExists(t *testing.T) {
	manager := &testutil.MockConfigManager{Err: domain.ErrConfigExists}
	cmd := newInitCommand(containerWithManager(manager))
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestNewInitCommand_NilContainerNeedsGlobal(t *testing.T) {
	cmd := newInitCommand(nil)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}
