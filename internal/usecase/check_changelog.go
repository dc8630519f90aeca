package usecase

import (
	"context"
	"fmt"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// CheckChangelogInput contains the parameters for checking the changelog.
type CheckChangelogInput struct {
	// Path overrides the configured changelog location.
	Path string
}

// CheckChangelogOutput contains the result of checking the changelog.
type CheckChangelogOutput struct {
	Findings []domain.Finding
	Path     string // Changelog file that was inspected
	Found    bool   // False when the changelog does not exist
}

// CheckChangelog is the use case for linting the changelog file.
type CheckChangelog struct {
	finder       domain.ArtifactFinder
	docs         domain.DocumentParser
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewCheckChangelog creates a new CheckChangelog use case.
func NewCheckChangelog(finder domain.ArtifactFinder, docs domain.DocumentParser, configLoader domain.ConfigLoader, logger domain.Logger) *CheckChangelog {
	return &CheckChangelog{
		finder:       finder,
		docs:         docs,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute lints the changelog. A missing changelog is not an error: the
// output reports Found=false and carries no findings.
func (uc *CheckChangelog) Execute(_ context.Context, in CheckChangelogInput) (*CheckChangelogOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	path := in.Path
	if path == "" {
		path = cfg.Paths.Changelog
	}

	out := &CheckChangelogOutput{Path: path}
	if !uc.finder.Exists(path) {
		if uc.logger != nil {
			uc.logger.Warn("changelog", fmt.Sprintf("%s not found, skipping", path))
		}
		return out, nil
	}

	content, err := uc.finder.Read(path)
	if err != nil {
		return nil, err
	}
	doc, err := uc.docs.Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out.Found = true
	out.Findings = cfg.ApplyConfig(domain.CheckChangelog(doc))
	domain.SortFindings(out.Findings)

	if uc.logger != nil {
		uc.logger.Info("changelog", fmt.Sprintf("checked %s, %d findings", path, len(out.Findings)))
	}
	return out, nil
}
