package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, ".github/workflows", cfg.Paths.Workflows)
	assert.Equal(t, ".github/scripts", cfg.Paths.Scripts)
	assert.Equal(t, "CHANGELOG.md", cfg.Paths.Changelog)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_RepoOverridesGlobal(t *testing.T) {
	repoDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
[paths]
changelog = "HISTORY.md"

[log]
level = "debug"
`)
	writeConfig(t, repoDir, `
[log]
level = "warn"
`)

	cfg, err := NewLoaderWithGlobalDir(repoDir, globalDir).Load()

	require.NoError(t, err)
	// Repo wins where both set a value; the global setting survives where
	// the repo is silent.
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "HISTORY.md", cfg.Paths.Changelog)
}

func TestLoader_Load_MergesSeverityMaps(t *testing.T) {
	repoDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
[rules.severity]
"workflow-timeout" = "warning"
"workflow-pinned-action" = "error"
`)
	writeConfig(t, repoDir, `
[rules.severity]
"workflow-timeout" = "error"
`)

	cfg, err := NewLoaderWithGlobalDir(repoDir, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Rules.Severity["workflow-timeout"])
	assert.Equal(t, "error", cfg.Rules.Severity["workflow-pinned-action"])
}

func TestLoader_Load_InvalidRuleID(t *testing.T) {
	repoDir := t.TempDir()
	writeConfig(t, repoDir, `
[rules]
disabled = ["no-such-rule"]
`)

	_, err := NewLoaderWithGlobalDir(repoDir, t.TempDir()).Load()

	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	repoDir := t.TempDir()
	writeConfig(t, repoDir, "[paths\n")

	_, err := NewLoaderWithGlobalDir(repoDir, t.TempDir()).Load()

	assert.Error(t, err)
}

func TestLoader_LoadRepo_IgnoresGlobal(t *testing.T) {
	repoDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[log]
level = "debug"
`)

	_, err := NewLoaderWithGlobalDir(repoDir, globalDir).LoadRepo()

	assert.ErrorIs(t, err, os.ErrNotExist)
}
