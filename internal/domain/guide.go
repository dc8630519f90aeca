package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// scriptPathPattern matches path-like references to companion scripts under
// a scripts/ directory, e.g. ".github/scripts/assign.js",
// "tools/scripts/build.sh" or a bare "scripts/validate-changelog.sh".
var scriptPathPattern = regexp.MustCompile(`(\.?/)?[\w./-]*scripts/[\w./-]+\.(sh|bash|js|mjs|cjs)`)

// scriptExampleHeaderMin is the minimum number of lines a fenced script
// example must have before the header block becomes mandatory. Short inline
// snippets stay exempt.
const scriptExampleHeaderMin = 8

// CheckGuide applies the guide rules to a parsed guide document.
func CheckGuide(doc Document) []Finding {
	var findings []Finding
	findings = append(findings, checkGuideHeadings(doc)...)
	findings = append(findings, checkGuideFences(doc)...)
	return findings
}

func checkGuideHeadings(doc Document) []Finding {
	var findings []Finding

	var h1 []Heading
	for _, h := range doc.Headings {
		if h.Level == 1 {
			h1 = append(h1, h)
		}
	}
	switch {
	case len(h1) == 0:
		findings = append(findings, Finding{
			Rule:     RuleGuideSingleH1,
			Severity: SeverityWarning,
			Path:     doc.Path,
			Message:  "guide has no top-level heading",
		})
	case len(h1) > 1:
		for _, h := range h1[1:] {
			findings = append(findings, Finding{
				Rule:     RuleGuideSingleH1,
				Severity: SeverityWarning,
				Path:     doc.Path,
				Line:     h.Line,
				Message:  fmt.Sprintf("extra top-level heading %q", h.Text),
			})
		}
	}

	prev := 0
	for _, h := range doc.Headings {
		if prev > 0 && h.Level > prev+1 {
			findings = append(findings, Finding{
				Rule:     RuleGuideHeadingOrder,
				Severity: SeverityWarning,
				Path:     doc.Path,
				Line:     h.Line,
				Message:  fmt.Sprintf("heading %q skips from level %d to %d", h.Text, prev, h.Level),
			})
		}
		prev = h.Level
	}

	return findings
}

func checkGuideFences(doc Document) []Finding {
	var findings []Finding

	for _, block := range doc.CodeBlocks {
		if block.Language == "" {
			findings = append(findings, Finding{
				Rule:     RuleGuideFenceLanguage,
				Severity: SeverityWarning,
				Path:     doc.Path,
				Line:     block.Line,
				Message:  "fenced code block has no language tag",
			})
			continue
		}

		if block.IsWorkflowExample() && !workflowExampleRefsScript(block) {
			findings = append(findings, Finding{
				Rule:     RuleGuideWorkflowScript,
				Severity: SeverityError,
				Path:     doc.Path,
				Line:     block.Line,
				Message:  "workflow example has no comment referencing its companion script",
			})
		}

		if block.IsScriptExample() && len(block.Lines()) >= scriptExampleHeaderMin {
			lang := LangBash
			if block.Language == "javascript" || block.Language == "js" {
				lang = LangJavaScript
			}
			header := ParseScriptHeader(block.Lines(), lang)
			if !header.Found || !header.Complete() {
				findings = append(findings, Finding{
					Rule:     RuleGuideScriptHeader,
					Severity: SeverityError,
					Path:     doc.Path,
					Line:     block.Line,
					Message:  "script example lacks a complete PURPOSE/CALLED BY/MAJOR RULES header",
				})
			}
		}
	}

	return findings
}

// workflowExampleRefsScript reports whether any YAML comment in the block
// mentions a script path.
func workflowExampleRefsScript(block CodeBlock) bool {
	for _, line := range block.Lines() {
		idx := strings.Index(line, "#")
		if idx < 0 {
			continue
		}
		if scriptPathPattern.MatchString(line[idx:]) {
			return true
		}
	}
	return false
}
