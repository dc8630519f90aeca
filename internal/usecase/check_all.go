package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// timeResolution is the rounding applied to durations in log lines.
const timeResolution = time.Millisecond

// CheckAllInput contains the parameters for a full check run.
type CheckAllInput struct {
	// Kinds restricts the run to the given check kinds. Empty means all.
	Kinds []domain.CheckKind
}

// CheckAllOutput contains the result of a full check run.
type CheckAllOutput struct {
	Findings []domain.Finding
	Summary  domain.Summary
	Checked  int // Number of files inspected
}

// CheckAll composes the four check use cases into one run.
type CheckAll struct {
	guides    *CheckGuides
	workflows *CheckWorkflows
	scripts   *CheckScripts
	changelog *CheckChangelog
	logger    domain.Logger
	clock     domain.Clock
}

// NewCheckAll creates a new CheckAll use case.
func NewCheckAll(guides *CheckGuides, workflows *CheckWorkflows, scripts *CheckScripts, changelog *CheckChangelog, logger domain.Logger, clock domain.Clock) *CheckAll {
	return &CheckAll{
		guides:    guides,
		workflows: workflows,
		scripts:   scripts,
		changelog: changelog,
		logger:    logger,
		clock:     clock,
	}
}

// Execute runs the selected checks and merges their findings.
func (uc *CheckAll) Execute(ctx context.Context, in CheckAllInput) (*CheckAllOutput, error) {
	kinds := in.Kinds
	if len(kinds) == 0 {
		kinds = domain.AllCheckKinds()
	}

	start := uc.clock.Now()
	out := &CheckAllOutput{}

	for _, kind := range kinds {
		switch kind {
		case domain.KindGuides:
			res, err := uc.guides.Execute(ctx, CheckGuidesInput{})
			if err != nil {
				return nil, err
			}
			out.Findings = append(out.Findings, res.Findings...)
			out.Checked += len(res.Checked)
		case domain.KindWorkflows:
			res, err := uc.workflows.Execute(ctx, CheckWorkflowsInput{})
			if err != nil {
				return nil, err
			}
			out.Findings = append(out.Findings, res.Findings...)
			out.Checked += len(res.Checked)
		case domain.KindScripts:
			res, err := uc.scripts.Execute(ctx, CheckScriptsInput{})
			if err != nil {
				return nil, err
			}
			out.Findings = append(out.Findings, res.Findings...)
			out.Checked += len(res.Checked)
		case domain.KindChangelog:
			res, err := uc.changelog.Execute(ctx, CheckChangelogInput{})
			if err != nil {
				return nil, err
			}
			out.Findings = append(out.Findings, res.Findings...)
			if res.Found {
				out.Checked++
			}
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCheckKind, kind)
		}
	}

	domain.SortFindings(out.Findings)
	out.Summary = domain.Summarize(out.Findings)

	if uc.logger != nil {
		uc.logger.Info("check", fmt.Sprintf(
			"checked %d files in %s: %d errors, %d warnings, %d notices",
			out.Checked, uc.clock.Now().Sub(start).Round(timeResolution),
			out.Summary.Errors, out.Summary.Warnings, out.Summary.Notices,
		))
	}
	return out, nil
}
