// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"path/filepath"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/infra/config"
	"github.com/mizunashi/wfcheck/internal/infra/logging"
	"github.com/mizunashi/wfcheck/internal/infra/markdown"
	"github.com/mizunashi/wfcheck/internal/infra/repo"
	"github.com/mizunashi/wfcheck/internal/infra/scriptfile"
	"github.com/mizunashi/wfcheck/internal/infra/workflowfile"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot string // Root directory of the git repository
	GitDir   string // Path to .git directory
	LogDir   string // Path to .git/wfcheck/logs directory
}

// newConfig creates a new Config from a discovered repository.
func newConfig(r *repo.Repo) Config {
	return Config{
		RepoRoot: r.Root(),
		GitDir:   r.GitDir(),
		LogDir:   filepath.Join(r.GitDir(), "wfcheck", "logs"),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Finder        domain.ArtifactFinder
	Documents     domain.DocumentParser
	Workflows     domain.WorkflowParser
	Scripts       domain.ScriptScanner
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the given
// directory.
func New(dir string) (*Container, error) {
	r, err := repo.Discover(dir)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(r)

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, err := configLoader.Load()
	level := "info"
	if err == nil {
		level = appConfig.Log.Level
	}

	return &Container{
		Finder:        r,
		Documents:     markdown.New(),
		Workflows:     workflowfile.New(),
		Scripts:       scriptfile.New(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		Clock:         domain.RealClock{},
		Logger:        logging.New(cfg.LogDir, logging.ParseLevel(level)),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, finder domain.ArtifactFinder, docs domain.DocumentParser, workflows domain.WorkflowParser, scripts domain.ScriptScanner, loader domain.ConfigLoader, manager domain.ConfigManager, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Finder:        finder,
		Documents:     docs,
		Workflows:     workflows,
		Scripts:       scripts,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container (the log file).
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// CheckGuidesUseCase returns a new CheckGuides use case.
func (c *Container) CheckGuidesUseCase() *usecase.CheckGuides {
	return usecase.NewCheckGuides(c.Finder, c.Documents, c.ConfigLoader, c.Logger)
}

// CheckWorkflowsUseCase returns a new CheckWorkflows use case.
func (c *Container) CheckWorkflowsUseCase() *usecase.CheckWorkflows {
	return usecase.NewCheckWorkflows(c.Finder, c.Workflows, c.ConfigLoader, c.Logger)
}

// CheckScriptsUseCase returns a new CheckScripts use case.
func (c *Container) CheckScriptsUseCase() *usecase.CheckScripts {
	return usecase.NewCheckScripts(c.Finder, c.Scripts, c.Workflows, c.ConfigLoader, c.Logger)
}

// CheckChangelogUseCase returns a new CheckChangelog use case.
func (c *Container) CheckChangelogUseCase() *usecase.CheckChangelog {
	return usecase.NewCheckChangelog(c.Finder, c.Documents, c.ConfigLoader, c.Logger)
}

// CheckAllUseCase returns a new CheckAll use case.
func (c *Container) CheckAllUseCase() *usecase.CheckAll {
	return usecase.NewCheckAll(
		c.CheckGuidesUseCase(),
		c.CheckWorkflowsUseCase(),
		c.CheckScriptsUseCase(),
		c.CheckChangelogUseCase(),
		c.Logger,
		c.Clock,
	)
}

// ListRulesUseCase returns a new ListRules use case. It works on a nil
// container so that the rule catalog is available outside a repository.
func (c *Container) ListRulesUseCase() *usecase.ListRules {
	if c == nil {
		return usecase.NewListRules(nil)
	}
	return usecase.NewListRules(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
