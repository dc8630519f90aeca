// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Path to the repository root
	globalConfDir string // Path to global config directory (e.g., ~/.config/wfcheck)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Merge order: default <- global <- repo (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		mergeConfigs(base, global)
	}
	if repo != nil {
		mergeConfigs(base, repo)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.repoRoot, domain.ConfigFileName))
}

// loadGlobal returns only the global configuration.
func (l *Loader) loadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile reads and decodes a single config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-zero fields of src onto dst.
func mergeConfigs(dst, src *domain.Config) {
	if src.Paths.Workflows != "" {
		dst.Paths.Workflows = src.Paths.Workflows
	}
	if src.Paths.Scripts != "" {
		dst.Paths.Scripts = src.Paths.Scripts
	}
	if len(src.Paths.Guides) > 0 {
		dst.Paths.Guides = src.Paths.Guides
	}
	if src.Paths.Changelog != "" {
		dst.Paths.Changelog = src.Paths.Changelog
	}
	if len(src.Rules.Disabled) > 0 {
		dst.Rules.Disabled = src.Rules.Disabled
	}
	if len(src.Rules.Severity) > 0 {
		if dst.Rules.Severity == nil {
			dst.Rules.Severity = make(map[string]string, len(src.Rules.Severity))
		}
		for id, sev := range src.Rules.Severity {
			dst.Rules.Severity[id] = sev
		}
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
}
