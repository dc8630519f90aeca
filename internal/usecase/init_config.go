package usecase

import (
	"context"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// InitConfigInput contains the parameters for initializing configuration.
type InitConfigInput struct {
	Global bool // Write the global config instead of the repository config
}

// InitConfigOutput contains the result of initializing configuration.
type InitConfigOutput struct {
	Path string // Path of the created config file
}

// InitConfig is the use case for writing the default config template.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{manager: manager}
}

// Execute writes the config template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	path, err := uc.manager.Init(in.Global)
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
