package domain

import (
	"fmt"
	"strings"
)

// allowedChangelogSections is the heading set the guides allow under a
// release (Keep a Changelog vocabulary).
var allowedChangelogSections = map[string]bool{
	"added":      true,
	"changed":    true,
	"deprecated": true,
	"removed":    true,
	"fixed":      true,
	"security":   true,
}

// CheckChangelog applies the changelog rules to a parsed changelog document.
// Releases are level-2 headings; sections are level-3 headings beneath them.
func CheckChangelog(doc Document) []Finding {
	var findings []Finding

	hasUnreleased := false
	hasRelease := false

	for _, h := range doc.Headings {
		switch h.Level {
		case 2:
			hasRelease = true
			if strings.Contains(strings.ToLower(h.Text), "unreleased") {
				hasUnreleased = true
			}
		case 3:
			name := normalizeSectionName(h.Text)
			if !allowedChangelogSections[name] {
				findings = append(findings, Finding{
					Rule:     RuleChangelogSections,
					Severity: SeverityError,
					Path:     doc.Path,
					Line:     h.Line,
					Message:  fmt.Sprintf("section %q is not an allowed changelog section", h.Text),
				})
			}
		}
	}

	if hasRelease && !hasUnreleased {
		findings = append(findings, Finding{
			Rule:     RuleChangelogUnreleased,
			Severity: SeverityWarning,
			Path:     doc.Path,
			Message:  "changelog has no Unreleased section",
		})
	}

	findings = append(findings, checkChangelogEntries(doc)...)

	return findings
}

// checkChangelogEntries verifies every level-3 section carries at least one
// bullet entry before the next heading.
func checkChangelogEntries(doc Document) []Finding {
	var findings []Finding

	for i, h := range doc.Headings {
		if h.Level != 3 {
			continue
		}
		end := int(^uint(0) >> 1) // end of document
		if i+1 < len(doc.Headings) {
			end = doc.Headings[i+1].Line
		}
		hasEntry := false
		for _, line := range doc.ListItems {
			if line > h.Line && line < end {
				hasEntry = true
				break
			}
		}
		if !hasEntry {
			findings = append(findings, Finding{
				Rule:     RuleChangelogEntryFormat,
				Severity: SeverityWarning,
				Path:     doc.Path,
				Line:     h.Line,
				Message:  fmt.Sprintf("section %q has no bullet entries", h.Text),
			})
		}
	}

	return findings
}

// normalizeSectionName lowercases a section heading and strips trailing
// annotations like "Added (experimental)".
func normalizeSectionName(text string) string {
	name := strings.ToLower(strings.TrimSpace(text))
	if idx := strings.IndexAny(name, " ("); idx > 0 {
		name = name[:idx]
	}
	return name
}
