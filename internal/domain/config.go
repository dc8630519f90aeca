package domain

import (
	"fmt"
	"path/filepath"
)

// ConfigFileName is the name of the wfcheck configuration file, both at the
// repository root and in the global config directory.
const ConfigFileName = "wfcheck.toml"

// GlobalConfigDir returns the global config directory under the given
// XDG config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "wfcheck")
}

// Config is the wfcheck configuration.
type Config struct {
	Paths PathsConfig `toml:"paths"`
	Rules RulesConfig `toml:"rules"`
	Log   LogConfig   `toml:"log"`
}

// PathsConfig locates the artifacts wfcheck inspects, relative to the
// repository root.
type PathsConfig struct {
	Workflows string   `toml:"workflows,omitempty"` // Workflow directory
	Scripts   string   `toml:"scripts,omitempty"`   // Companion script directory
	Guides    []string `toml:"guides,omitempty"`    // Guide document globs
	Changelog string   `toml:"changelog,omitempty"` // Changelog file
}

// RulesConfig tunes the rule catalog from [rules].
type RulesConfig struct {
	Disabled []string          `toml:"disabled,omitempty"` // Rule IDs to skip
	Severity map[string]string `toml:"severity,omitempty"` // Per-rule severity overrides
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Workflows: ".github/workflows",
			Scripts:   ".github/scripts",
			Guides:    []string{"docs/*.md", "*.md"},
			Changelog: "CHANGELOG.md",
		},
		Rules: RulesConfig{},
		Log:   LogConfig{Level: "info"},
	}
}

// Validate checks that disabled rules and severity overrides reference known
// rules and valid severities.
func (c *Config) Validate() error {
	for _, id := range c.Rules.Disabled {
		if _, err := LookupRule(id); err != nil {
			return fmt.Errorf("rules.disabled: %w", err)
		}
	}
	for id, sev := range c.Rules.Severity {
		if _, err := LookupRule(id); err != nil {
			return fmt.Errorf("rules.severity: %w", err)
		}
		if _, err := ParseSeverity(sev); err != nil {
			return fmt.Errorf("rules.severity[%s]: %w", id, err)
		}
	}
	return nil
}

// RuleDisabled reports whether the rule is disabled by config.
func (c *Config) RuleDisabled(id string) bool {
	for _, d := range c.Rules.Disabled {
		if d == id {
			return true
		}
	}
	return false
}

// EffectiveSeverity resolves the severity for a rule, honoring config
// overrides over the catalog default.
func (c *Config) EffectiveSeverity(rule Rule) Severity {
	if s, ok := c.Rules.Severity[rule.ID]; ok {
		if sev, err := ParseSeverity(s); err == nil {
			return sev
		}
	}
	return rule.Severity
}

// ApplyConfig drops findings for disabled rules and rewrites severities per
// the config overrides.
func (c *Config) ApplyConfig(findings []Finding) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if c.RuleDisabled(f.Rule) {
			continue
		}
		if rule, err := LookupRule(f.Rule); err == nil {
			f.Severity = c.EffectiveSeverity(rule)
		}
		out = append(out, f)
	}
	return out
}
