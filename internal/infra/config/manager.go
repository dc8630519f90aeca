package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager writes configuration files.
type Manager struct {
	repoRoot      string // Path to the repository root
	globalConfDir string // Path to global config directory
}

// NewManager creates a new Manager.
func NewManager(repoRoot string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config
// directory. This is useful for testing.
func NewManagerWithGlobalDir(repoRoot, globalConfDir string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// Init writes the default config template. Fails if the file exists.
func (m *Manager) Init(global bool) (string, error) {
	var path string
	if global {
		if m.globalConfDir == "" {
			return "", errors.New("global config directory not available")
		}
		if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
			return "", err
		}
		path = filepath.Join(m.globalConfDir, domain.ConfigFileName)
	} else {
		path = filepath.Join(m.repoRoot, domain.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// configTemplate is the commented default configuration.
const configTemplate = `# wfcheck configuration
# Repository config lives at the repo root; a global config at
# $XDG_CONFIG_HOME/wfcheck/wfcheck.toml applies to every repository.

[paths]
# workflows = ".github/workflows"
# scripts = ".github/scripts"
# guides = ["docs/*.md", "*.md"]
# changelog = "CHANGELOG.md"

[rules]
# Disable rules by ID:
# disabled = ["workflow-timeout"]

# Override severities per rule (notice, warning, error):
# [rules.severity]
# "workflow-pinned-action" = "error"

[log]
# level = "info"
`
