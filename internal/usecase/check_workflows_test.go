package usecase

import (
	"context"
	"testing"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWorkflows_Execute_Success(t *testing.T) {
	finder := newMockFinder()
	finder.workflows = []string{".github/workflows/assign.yml"}
	finder.scripts = []string{".github/scripts/assign.js"}
	finder.add(".github/workflows/assign.yml", "on: issues\n")
	finder.add(".github/scripts/assign.js", "// script\n")

	parser := &mockWorkflowParser{workflows: map[string]domain.Workflow{
		".github/workflows/assign.yml": {
			Path:        ".github/workflows/assign.yml",
			Triggers:    []string{"issues"},
			Concurrency: &domain.Concurrency{Group: "assign-${{ github.event.issue.number }}"},
			Jobs: []domain.Job{
				{
					ID:         "assign",
					HasTimeout: true,
					Steps:      []domain.Step{{Run: "node .github/scripts/assign.js", Line: 12}},
				},
			},
		},
	}}

	uc := NewCheckWorkflows(finder, parser, &mockConfigLoader{}, &mockLogger{})

	out, err := uc.Execute(context.Background(), CheckWorkflowsInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{".github/workflows/assign.yml"}, out.Checked)
	assert.Empty(t, out.Findings)
}

func TestCheckWorkflows_Execute_MissingScript(t *testing.T) {
	finder := newMockFinder()
	finder.workflows = []string{".github/workflows/assign.yml"}
	finder.add(".github/workflows/assign.yml", "on: issues\n")

	parser := &mockWorkflowParser{workflows: map[string]domain.Workflow{
		".github/workflows/assign.yml": {
			Path:        ".github/workflows/assign.yml",
			Triggers:    []string{"issues"},
			Concurrency: &domain.Concurrency{Group: "assign"},
			Jobs: []domain.Job{
				{
					ID:         "assign",
					HasTimeout: true,
					Steps:      []domain.Step{{Run: "node .github/scripts/gone.js", Line: 12}},
				},
			},
		},
	}}

	uc := NewCheckWorkflows(finder, parser, &mockConfigLoader{}, nil)

	out, err := uc.Execute(context.Background(), CheckWorkflowsInput{})

	require.NoError(t, err)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, domain.RuleWorkflowScriptExists, out.Findings[0].Rule)
	assert.Equal(t, 12, out.Findings[0].Line)
}

func TestCheckWorkflows_Execute_ScriptOutsideConfiguredDir(t *testing.T) {
	// A referenced script that exists outside the scripts directory still
	// counts as present.
	finder := newMockFinder()
	finder.workflows = []string{".github/workflows/ci.yml"}
	finder.add(".github/workflows/ci.yml", "on: push\n")
	finder.add("tools/scripts/build.sh", "#!/bin/bash\n")

	parser := &mockWorkflowParser{workflows: map[string]domain.Workflow{
		".github/workflows/ci.yml": {
			Path:     ".github/workflows/ci.yml",
			Triggers: []string{"push"},
			Jobs: []domain.Job{
				{
					ID:         "build",
					HasTimeout: true,
					Steps:      []domain.Step{{Run: "bash tools/scripts/build.sh", Line: 8}},
				},
			},
		},
	}}

	uc := NewCheckWorkflows(finder, parser, &mockConfigLoader{}, nil)

	out, err := uc.Execute(context.Background(), CheckWorkflowsInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Findings)
}

func TestCheckWorkflows_Execute_ParseErrorIsFinding(t *testing.T) {
	finder := newMockFinder()
	finder.workflows = []string{".github/workflows/broken.yml", ".github/workflows/ok.yml"}
	finder.add(".github/workflows/broken.yml", "on: [unclosed\n")
	finder.add(".github/workflows/ok.yml", "on: push\n")

	parser := &mockWorkflowParser{
		workflows: map[string]domain.Workflow{
			".github/workflows/ok.yml": {
				Path:     ".github/workflows/ok.yml",
				Triggers: []string{"push"},
				Jobs:     []domain.Job{{ID: "x", HasTimeout: true}},
			},
		},
		errPaths: map[string]error{".github/workflows/broken.yml": assert.AnError},
	}

	uc := NewCheckWorkflows(finder, parser, &mockConfigLoader{}, nil)

	out, err := uc.Execute(context.Background(), CheckWorkflowsInput{})

	require.NoError(t, err)
	assert.Len(t, out.Checked, 2)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, domain.RuleWorkflowParse, out.Findings[0].Rule)
	assert.Equal(t, ".github/workflows/broken.yml", out.Findings[0].Path)
}

func TestCheckWorkflows_Execute_ListError(t *testing.T) {
	finder := newMockFinder()
	finder.listErr = assert.AnError

	uc := NewCheckWorkflows(finder, &mockWorkflowParser{}, &mockConfigLoader{}, nil)

	_, err := uc.Execute(context.Background(), CheckWorkflowsInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "find workflows")
}
