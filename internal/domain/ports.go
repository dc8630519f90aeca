package domain

import "time"

// ArtifactFinder locates the files wfcheck inspects.
// All returned paths are relative to the repository root.
type ArtifactFinder interface {
	// Guides returns the guide documents matching the configured globs.
	Guides(globs []string) ([]string, error)

	// Workflows returns the workflow files under the configured directory.
	Workflows(dir string) ([]string, error)

	// Scripts returns the companion scripts under the configured directory.
	Scripts(dir string) ([]string, error)

	// Exists reports whether a path exists in the repository.
	Exists(path string) bool

	// Read returns the content of a repository file.
	Read(path string) ([]byte, error)
}

// DocumentParser parses Markdown artifacts.
type DocumentParser interface {
	// Parse builds the document model for the given content.
	Parse(path string, content []byte) (Document, error)
}

// WorkflowParser parses workflow YAML files.
type WorkflowParser interface {
	// Parse builds the workflow model for the given content.
	Parse(path string, content []byte) (Workflow, error)
}

// ScriptScanner parses companion scripts.
type ScriptScanner interface {
	// Scan builds the script model for the given content.
	Scan(path string, content []byte) (Script, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadRepo returns only the repository configuration.
	LoadRepo() (*Config, error)
}

// ConfigManager writes configuration files.
type ConfigManager interface {
	// Init writes the default config template. Fails if the file exists.
	Init(global bool) (path string, err error)
}

// Logger records check runs to the wfcheck log file.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
