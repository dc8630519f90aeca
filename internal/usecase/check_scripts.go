package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// CheckScriptsInput contains the parameters for checking companion scripts.
type CheckScriptsInput struct {
	// Paths restricts the check to the given script files. Empty means
	// every file under the configured scripts directory.
	Paths []string
}

// CheckScriptsOutput contains the result of checking companion scripts.
type CheckScriptsOutput struct {
	Findings []domain.Finding
	Checked  []string // Script files that were inspected
}

// CheckScripts is the use case for linting companion automation scripts.
type CheckScripts struct {
	finder       domain.ArtifactFinder
	scripts      domain.ScriptScanner
	workflows    domain.WorkflowParser
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewCheckScripts creates a new CheckScripts use case.
func NewCheckScripts(finder domain.ArtifactFinder, scripts domain.ScriptScanner, workflows domain.WorkflowParser, configLoader domain.ConfigLoader, logger domain.Logger) *CheckScripts {
	return &CheckScripts{
		finder:       finder,
		scripts:      scripts,
		workflows:    workflows,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute lints the companion scripts.
func (uc *CheckScripts) Execute(_ context.Context, in CheckScriptsInput) (*CheckScriptsOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths := in.Paths
	if len(paths) == 0 {
		paths, err = uc.finder.Scripts(cfg.Paths.Scripts)
		if err != nil {
			return nil, fmt.Errorf("find scripts: %w", err)
		}
	}

	workflowRefs, workflowFiles, err := uc.workflowIndex(cfg.Paths.Workflows)
	if err != nil {
		return nil, err
	}

	out := &CheckScriptsOutput{}
	for _, path := range paths {
		content, err := uc.finder.Read(path)
		if err != nil {
			return nil, err
		}
		script, err := uc.scripts.Scan(path, content)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}

		out.Checked = append(out.Checked, path)
		out.Findings = append(out.Findings, domain.CheckScript(script, workflowRefs, workflowFiles)...)
	}

	out.Findings = cfg.ApplyConfig(out.Findings)
	domain.SortFindings(out.Findings)

	if uc.logger != nil {
		uc.logger.Info("scripts", fmt.Sprintf("checked %d scripts, %d findings", len(out.Checked), len(out.Findings)))
	}
	return out, nil
}

// workflowIndex parses every workflow once and returns the script reference
// index plus the set of workflow base names (for CALLED BY validation).
// Unparseable workflows are skipped here; CheckWorkflows reports them.
func (uc *CheckScripts) workflowIndex(dir string) (map[string][]string, map[string]bool, error) {
	paths, err := uc.finder.Workflows(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("find workflows: %w", err)
	}

	refs := make(map[string][]string)
	files := make(map[string]bool, len(paths))
	for _, path := range paths {
		base := filepath.Base(path)
		files[base] = true

		content, err := uc.finder.Read(path)
		if err != nil {
			return nil, nil, err
		}
		w, err := uc.workflows.Parse(path, content)
		if err != nil {
			continue
		}
		for _, ref := range w.ScriptRefs() {
			refs[ref.Path] = append(refs[ref.Path], base)
		}
	}
	return refs, files, nil
}
