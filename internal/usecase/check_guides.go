// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// CheckGuidesInput contains the parameters for checking guide documents.
type CheckGuidesInput struct {
	// Paths restricts the check to the given guide files. Empty means all
	// guides matching the configured globs.
	Paths []string
}

// CheckGuidesOutput contains the result of checking guide documents.
type CheckGuidesOutput struct {
	Findings []domain.Finding
	Checked  []string // Guide files that were inspected
}

// CheckGuides is the use case for linting workflow guide documents.
type CheckGuides struct {
	finder       domain.ArtifactFinder
	docs         domain.DocumentParser
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewCheckGuides creates a new CheckGuides use case.
func NewCheckGuides(finder domain.ArtifactFinder, docs domain.DocumentParser, configLoader domain.ConfigLoader, logger domain.Logger) *CheckGuides {
	return &CheckGuides{
		finder:       finder,
		docs:         docs,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute lints the guide documents.
func (uc *CheckGuides) Execute(_ context.Context, in CheckGuidesInput) (*CheckGuidesOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := in.Paths
	if len(paths) == 0 {
		paths, err = uc.finder.Guides(cfg.Paths.Guides)
		if err != nil {
			return nil, fmt.Errorf("find guides: %w", err)
		}
	}

	out := &CheckGuidesOutput{}
	for _, path := range paths {
		// The changelog has its own rule set.
		if path == cfg.Paths.Changelog {
			continue
		}

		content, err := uc.finder.Read(path)
		if err != nil {
			return nil, err
		}
		doc, err := uc.docs.Parse(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		out.Checked = append(out.Checked, path)
		out.Findings = append(out.Findings, domain.CheckGuide(doc)...)
	}

	out.Findings = cfg.ApplyConfig(out.Findings)
	domain.SortFindings(out.Findings)

	if uc.logger != nil {
		uc.logger.Info("guides", fmt.Sprintf("checked %d guides, %d findings", len(out.Checked), len(out.Findings)))
	}
	return out, nil
}
