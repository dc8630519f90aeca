package usecase

import (
	"context"
	"fmt"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// CheckWorkflowsInput contains the parameters for checking workflow files.
type CheckWorkflowsInput struct {
	// Paths restricts the check to the given workflow files. Empty means
	// every file under the configured workflows directory.
	Paths []string
}

// CheckWorkflowsOutput contains the result of checking workflow files.
type CheckWorkflowsOutput struct {
	Findings []domain.Finding
	Checked  []string // Workflow files that were inspected
}

// CheckWorkflows is the use case for linting workflow YAML files.
type CheckWorkflows struct {
	finder       domain.ArtifactFinder
	workflows    domain.WorkflowParser
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewCheckWorkflows creates a new CheckWorkflows use case.
func NewCheckWorkflows(finder domain.ArtifactFinder, workflows domain.WorkflowParser, configLoader domain.ConfigLoader, logger domain.Logger) *CheckWorkflows {
	return &CheckWorkflows{
		finder:       finder,
		workflows:    workflows,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute lints the workflow files.
func (uc *CheckWorkflows) Execute(_ context.Context, in CheckWorkflowsInput) (*CheckWorkflowsOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := in.Paths
	if len(paths) == 0 {
		paths, err = uc.finder.Workflows(cfg.Paths.Workflows)
		if err != nil {
			return nil, fmt.Errorf("find workflows: %w", err)
		}
	}

	scripts, err := uc.scriptSet(cfg.Paths.Scripts)
	if err != nil {
		return nil, err
	}

	out := &CheckWorkflowsOutput{}
	for _, path := range paths {
		content, err := uc.finder.Read(path)
		if err != nil {
			return nil, err
		}

		w, err := uc.workflows.Parse(path, content)
		if err != nil {
			// A broken workflow file is a finding, not an abort: the rest
			// of the repository still gets checked.
			out.Checked = append(out.Checked, path)
			out.Findings = append(out.Findings, domain.Finding{
				Rule:     domain.RuleWorkflowParse,
				Severity: domain.SeverityError,
				Path:     path,
				Message:  err.Error(),
			})
			continue
		}

		// Scripts referenced from outside the configured directory still
		// count as existing when the file is present.
		for _, ref := range w.ScriptRefs() {
			if !scripts[ref.Path] && uc.finder.Exists(ref.Path) {
				scripts[ref.Path] = true
			}
		}

		out.Checked = append(out.Checked, path)
		out.Findings = append(out.Findings, domain.CheckWorkflow(w, scripts)...)
	}

	out.Findings = cfg.ApplyConfig(out.Findings)
	domain.SortFindings(out.Findings)

	if uc.logger != nil {
		uc.logger.Info("workflows", fmt.Sprintf("checked %d workflows, %d findings", len(out.Checked), len(out.Findings)))
	}
	return out, nil
}

// scriptSet returns the existing script paths as a lookup set.
func (uc *CheckWorkflows) scriptSet(dir string) (map[string]bool, error) {
	scripts, err := uc.finder.Scripts(dir)
	if err != nil {
		return nil, fmt.Errorf("find scripts: %w", err)
	}
	set := make(map[string]bool, len(scripts))
	for _, s := range scripts {
		set[s] = true
	}
	return set, nil
}
