package usecase

import (
	"context"
	"testing"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute_Repo(t *testing.T) {
	manager := &mockConfigManager{path: "/repo/wfcheck.toml"}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, "/repo/wfcheck.toml", out.Path)
	assert.True(t, manager.initCalled)
	assert.False(t, manager.global)
}

func TestInitConfig_Execute_Global(t *testing.T) {
	manager := &mockConfigManager{path: "/home/user/.config/wfcheck/wfcheck.toml"}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{Global: true})

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.config/wfcheck/wfcheck.toml", out.Path)
	assert.True(t, manager.global)
}

func TestInitConfig_Execute_AlreadyExists(t *testing.T) {
	manager := &mockConfigManager{err: domain.ErrConfigExists}
	uc := NewInitConfig(manager)

	_, err := uc.Execute(context.Background(), InitConfigInput{})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
