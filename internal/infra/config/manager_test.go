package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizunashi/wfcheck/internal/domain"
)

func TestManager_Init_Repo(t *testing.T) {
	repoDir := t.TempDir()
	manager := NewManagerWithGlobalDir(repoDir, t.TempDir())

	path, err := manager.Init(false)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repoDir, domain.ConfigFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The template must decode, and being fully commented out it must not
	// change any default.
	var cfg domain.Config
	require.NoError(t, toml.Unmarshal(data, &cfg))
	assert.Empty(t, cfg.Paths.Workflows)
	assert.Empty(t, cfg.Rules.Disabled)
}

func TestManager_Init_Global(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "wfcheck")
	manager := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	path, err := manager.Init(true)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), path)
	assert.FileExists(t, path)
}

func TestManager_Init_AlreadyExists(t *testing.T) {
	repoDir := t.TempDir()
	manager := NewManagerWithGlobalDir(repoDir, t.TempDir())

	_, err := manager.Init(false)
	require.NoError(t, err)

	path, err := manager.Init(false)

	assert.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Equal(t, filepath.Join(repoDir, domain.ConfigFileName), path)
}
