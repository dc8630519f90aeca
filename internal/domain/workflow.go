package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Workflow is the parsed form of a GitHub Actions workflow file.
// Fields are ordered to minimize memory padding.
type Workflow struct {
	Path           string
	Name           string
	Triggers       []string // Event names from the on: block
	DispatchInputs []string // Input names of the workflow_dispatch trigger
	Jobs           []Job
	Concurrency    *Concurrency
}

// Concurrency is a workflow-level concurrency block.
type Concurrency struct {
	Group            string
	Line             int
	CancelInProgress bool
}

// Job is a single job of a workflow.
// Fields are ordered to minimize memory padding.
type Job struct {
	ID         string
	Steps      []Step
	Line       int
	HasTimeout bool // timeout-minutes declared
}

// Step is a single step of a job.
// Fields are ordered to minimize memory padding.
type Step struct {
	Name string
	Uses string
	Run  string
	Env  map[string]string
	With map[string]string
	Line int
}

// ScriptRef is a reference from a workflow step to a companion script.
type ScriptRef struct {
	Path string // Normalized path relative to the repo root
	Line int
}

var (
	// credentialPattern matches literal credentials that must never appear
	// in a workflow file (GitHub token prefixes, AWS access key IDs).
	credentialPattern = regexp.MustCompile(`\b(ghp_[A-Za-z0-9]{20,}|gho_[A-Za-z0-9]{20,}|ghs_[A-Za-z0-9]{20,}|github_pat_[A-Za-z0-9_]{20,}|AKIA[0-9A-Z]{16})\b`)

	// shaPinPattern matches a 40-hex commit SHA ref in a uses: reference.
	shaPinPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)
)

// issueEvents are the trigger events for which the guides require a
// concurrency group, so that automation for one issue or PR never runs
// concurrently with itself.
var issueEvents = map[string]bool{
	"issues":              true,
	"issue_comment":       true,
	"pull_request":        true,
	"pull_request_target": true,
	"pull_request_review": true,
}

// ScriptRefs returns every companion-script path referenced by a run step.
func (w Workflow) ScriptRefs() []ScriptRef {
	var refs []ScriptRef
	seen := make(map[string]bool)
	for _, job := range w.Jobs {
		for _, step := range job.Steps {
			if step.Run == "" {
				continue
			}
			for _, m := range scriptPathPattern.FindAllString(step.Run, -1) {
				path := NormalizeScriptPath(m)
				key := fmt.Sprintf("%s:%d", path, step.Line)
				if seen[key] {
					continue
				}
				seen[key] = true
				refs = append(refs, ScriptRef{Path: path, Line: step.Line})
			}
		}
	}
	return refs
}

// NormalizeScriptPath strips a leading "./" from a script reference.
func NormalizeScriptPath(p string) string {
	return strings.TrimPrefix(p, "./")
}

// HasTrigger reports whether the workflow declares the given trigger event.
func (w Workflow) HasTrigger(event string) bool {
	for _, t := range w.Triggers {
		if t == event {
			return true
		}
	}
	return false
}

// hasIssueTrigger reports whether any trigger is an issue or PR event.
func (w Workflow) hasIssueTrigger() bool {
	for _, t := range w.Triggers {
		if issueEvents[t] {
			return true
		}
	}
	return false
}

// CheckWorkflow applies the workflow rules to a parsed workflow.
// scripts is the set of existing script paths relative to the repo root.
func CheckWorkflow(w Workflow, scripts map[string]bool) []Finding {
	var findings []Finding

	refs := w.ScriptRefs()
	mutating := len(refs) > 0

	for _, ref := range refs {
		if !scripts[ref.Path] {
			findings = append(findings, Finding{
				Rule:     RuleWorkflowScriptExists,
				Severity: SeverityError,
				Path:     w.Path,
				Line:     ref.Line,
				Message:  fmt.Sprintf("referenced script %s does not exist", ref.Path),
			})
		}
	}

	if w.hasIssueTrigger() && (w.Concurrency == nil || w.Concurrency.Group == "") {
		findings = append(findings, Finding{
			Rule:     RuleWorkflowConcurrency,
			Severity: SeverityWarning,
			Path:     w.Path,
			Message:  "issue/PR triggered workflow declares no concurrency group",
		})
	}

	if mutating && w.Concurrency != nil && w.Concurrency.CancelInProgress {
		findings = append(findings, Finding{
			Rule:     RuleWorkflowCancelMutate,
			Severity: SeverityWarning,
			Path:     w.Path,
			Line:     w.Concurrency.Line,
			Message:  "mutating workflow sets cancel-in-progress: true",
		})
	}

	findings = append(findings, checkInlineSecrets(w)...)
	findings = append(findings, checkPinnedActions(w)...)

	for _, job := range w.Jobs {
		if !job.HasTimeout {
			findings = append(findings, Finding{
				Rule:     RuleWorkflowTimeout,
				Severity: SeverityNotice,
				Path:     w.Path,
				Line:     job.Line,
				Message:  fmt.Sprintf("job %q declares no timeout-minutes", job.ID),
			})
		}
	}

	if mutating && w.HasTrigger("workflow_dispatch") && !w.hasDispatchInput("dry_run") {
		findings = append(findings, Finding{
			Rule:     RuleWorkflowDryRunInput,
			Severity: SeverityNotice,
			Path:     w.Path,
			Message:  "dispatch workflow runs scripts but exposes no dry_run input",
		})
	}

	return findings
}

func (w Workflow) hasDispatchInput(name string) bool {
	for _, in := range w.DispatchInputs {
		if in == name {
			return true
		}
	}
	return false
}

func checkInlineSecrets(w Workflow) []Finding {
	var findings []Finding
	report := func(line int) {
		findings = append(findings, Finding{
			Rule:     RuleWorkflowInlineSecret,
			Severity: SeverityError,
			Path:     w.Path,
			Line:     line,
			Message:  "step embeds a literal credential; use ${{ secrets.* }} instead",
		})
	}
	for _, job := range w.Jobs {
		for _, step := range job.Steps {
			if credentialPattern.MatchString(step.Run) {
				report(step.Line)
				continue
			}
			found := false
			for _, v := range step.Env {
				if credentialPattern.MatchString(v) {
					found = true
					break
				}
			}
			if !found {
				for _, v := range step.With {
					if credentialPattern.MatchString(v) {
						found = true
						break
					}
				}
			}
			if found {
				report(step.Line)
			}
		}
	}
	return findings
}

func checkPinnedActions(w Workflow) []Finding {
	var findings []Finding
	for _, job := range w.Jobs {
		for _, step := range job.Steps {
			if step.Uses == "" {
				continue
			}
			owner, ref, ok := splitUses(step.Uses)
			if !ok {
				continue
			}
			// First-party actions may float on a tag.
			if owner == "actions" || owner == "github" {
				continue
			}
			if !shaPinPattern.MatchString(ref) {
				findings = append(findings, Finding{
					Rule:     RuleWorkflowPinnedAction,
					Severity: SeverityWarning,
					Path:     w.Path,
					Line:     step.Line,
					Message:  fmt.Sprintf("action %s is not pinned to a commit SHA", step.Uses),
				})
			}
		}
	}
	return findings
}

// splitUses splits "owner/repo@ref" into owner and ref. Local actions
// ("./...") and docker references are skipped.
func splitUses(uses string) (owner, ref string, ok bool) {
	if strings.HasPrefix(uses, "./") || strings.HasPrefix(uses, "docker://") {
		return "", "", false
	}
	at := strings.LastIndex(uses, "@")
	if at < 0 {
		return "", "", false
	}
	slash := strings.Index(uses, "/")
	if slash < 0 || slash > at {
		return "", "", false
	}
	return uses[:slash], uses[at+1:], true
}
