package domain

import "fmt"

// Rule IDs. IDs are stable: they appear in config files, reports and CI logs.
const (
	RuleGuideSingleH1         = "guide-single-h1"
	RuleGuideHeadingOrder     = "guide-heading-order"
	RuleGuideFenceLanguage    = "guide-fence-language"
	RuleGuideWorkflowScript   = "guide-workflow-script-ref"
	RuleGuideScriptHeader     = "guide-script-header"
	RuleWorkflowParse         = "workflow-parse"
	RuleWorkflowScriptExists  = "workflow-script-exists"
	RuleWorkflowConcurrency   = "workflow-concurrency"
	RuleWorkflowCancelMutate  = "workflow-cancel-mutating"
	RuleWorkflowInlineSecret  = "workflow-no-inline-secret"
	RuleWorkflowPinnedAction  = "workflow-pinned-action"
	RuleWorkflowTimeout       = "workflow-timeout"
	RuleWorkflowDryRunInput   = "workflow-dry-run-input"
	RuleScriptHeader          = "script-header"
	RuleScriptCalledBy        = "script-called-by"
	RuleScriptOrphan          = "script-orphan"
	RuleChangelogSections     = "changelog-sections"
	RuleChangelogUnreleased   = "changelog-unreleased"
	RuleChangelogEntryFormat  = "changelog-entry-format"
)

// CheckKind identifies which artifact family a rule inspects.
type CheckKind string

const (
	KindGuides    CheckKind = "guides"
	KindWorkflows CheckKind = "workflows"
	KindScripts   CheckKind = "scripts"
	KindChangelog CheckKind = "changelog"
)

// ParseCheckKind parses a check kind name as used on the command line.
func ParseCheckKind(s string) (CheckKind, error) {
	switch CheckKind(s) {
	case KindGuides, KindWorkflows, KindScripts, KindChangelog:
		return CheckKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCheckKind, s)
}

// AllCheckKinds lists every check kind in execution order.
func AllCheckKinds() []CheckKind {
	return []CheckKind{KindGuides, KindWorkflows, KindScripts, KindChangelog}
}

// Rule describes one entry of the rule catalog.
// Fields are ordered to minimize memory padding.
type Rule struct {
	ID       string
	Summary  string
	Kind     CheckKind
	Severity Severity // Default severity before config overrides
}

// Rules returns the full rule catalog in report order.
func Rules() []Rule {
	return []Rule{
		{RuleGuideSingleH1, "guide has exactly one top-level heading", KindGuides, SeverityWarning},
		{RuleGuideHeadingOrder, "guide heading levels never skip", KindGuides, SeverityWarning},
		{RuleGuideFenceLanguage, "fenced code blocks carry a language tag", KindGuides, SeverityWarning},
		{RuleGuideWorkflowScript, "workflow examples reference their script with a comment", KindGuides, SeverityError},
		{RuleGuideScriptHeader, "script examples start with a PURPOSE/CALLED BY/MAJOR RULES header", KindGuides, SeverityError},
		{RuleWorkflowParse, "workflow file parses as YAML", KindWorkflows, SeverityError},
		{RuleWorkflowScriptExists, "run steps reference existing script files", KindWorkflows, SeverityError},
		{RuleWorkflowConcurrency, "issue and PR triggered workflows declare a concurrency group", KindWorkflows, SeverityWarning},
		{RuleWorkflowCancelMutate, "mutating workflows do not cancel in-progress runs", KindWorkflows, SeverityWarning},
		{RuleWorkflowInlineSecret, "steps never embed literal credentials", KindWorkflows, SeverityError},
		{RuleWorkflowPinnedAction, "third-party actions are pinned to a commit SHA", KindWorkflows, SeverityWarning},
		{RuleWorkflowTimeout, "jobs declare timeout-minutes", KindWorkflows, SeverityNotice},
		{RuleWorkflowDryRunInput, "dispatch workflows running scripts expose a dry_run input", KindWorkflows, SeverityNotice},
		{RuleScriptHeader, "scripts start with a PURPOSE/CALLED BY/MAJOR RULES header", KindScripts, SeverityError},
		{RuleScriptCalledBy, "CALLED BY references existing workflow files", KindScripts, SeverityWarning},
		{RuleScriptOrphan, "script is referenced by at least one workflow", KindScripts, SeverityNotice},
		{RuleChangelogSections, "release sections use the allowed heading set", KindChangelog, SeverityError},
		{RuleChangelogUnreleased, "changelog keeps an Unreleased section", KindChangelog, SeverityWarning},
		{RuleChangelogEntryFormat, "changelog sections contain bullet entries", KindChangelog, SeverityWarning},
	}
}

// LookupRule returns the catalog entry for the given ID.
func LookupRule(id string) (Rule, error) {
	for _, r := range Rules() {
		if r.ID == id {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, id)
}
