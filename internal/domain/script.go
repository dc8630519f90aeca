package domain

import (
	"path/filepath"
	"strings"
)

// ScriptLanguage identifies the language of a companion script.
type ScriptLanguage string

const (
	LangBash       ScriptLanguage = "bash"
	LangJavaScript ScriptLanguage = "javascript"
	LangUnknown    ScriptLanguage = "unknown"
)

// Script is a companion automation script invoked by a workflow step.
// Fields are ordered to minimize memory padding.
type Script struct {
	Path     string
	Header   ScriptHeader
	Language ScriptLanguage
}

// ScriptHeader is the documentation block the guides require at the top of
// every companion script.
type ScriptHeader struct {
	Purpose    string
	CalledBy   []string // Workflow file names listed under CALLED BY
	MajorRules []string // Bullet entries under MAJOR RULES
	Found      bool     // A header comment block was present at all
}

// Complete reports whether all three required sections are present and
// non-empty.
func (h ScriptHeader) Complete() bool {
	return h.Purpose != "" && len(h.CalledBy) > 0 && len(h.MajorRules) > 0
}

// MissingSections lists the required sections absent from the header.
func (h ScriptHeader) MissingSections() []string {
	var missing []string
	if h.Purpose == "" {
		missing = append(missing, "PURPOSE")
	}
	if len(h.CalledBy) == 0 {
		missing = append(missing, "CALLED BY")
	}
	if len(h.MajorRules) == 0 {
		missing = append(missing, "MAJOR RULES")
	}
	return missing
}

// DetectScriptLanguage infers the script language from its file name and
// first line (shebang).
func DetectScriptLanguage(path, firstLine string) ScriptLanguage {
	switch filepath.Ext(path) {
	case ".sh", ".bash":
		return LangBash
	case ".js", ".mjs", ".cjs":
		return LangJavaScript
	}
	if strings.HasPrefix(firstLine, "#!") {
		switch {
		case strings.Contains(firstLine, "bash"), strings.Contains(firstLine, "/sh"):
			return LangBash
		case strings.Contains(firstLine, "node"):
			return LangJavaScript
		}
	}
	return LangUnknown
}

// ParseScriptHeader extracts the PURPOSE / CALLED BY / MAJOR RULES header
// from the leading comment block of a script. The block ends at the first
// non-comment, non-blank line. A shebang line is skipped.
func ParseScriptHeader(lines []string, lang ScriptLanguage) ScriptHeader {
	var header ScriptHeader
	section := ""

	for i, raw := range lines {
		if i == 0 && strings.HasPrefix(raw, "#!") {
			continue
		}
		text, ok := commentText(raw, lang)
		if !ok {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			break
		}
		header.Found = true

		switch upper := strings.ToUpper(text); {
		case strings.HasPrefix(upper, "PURPOSE:"):
			section = "purpose"
			header.Purpose = strings.TrimSpace(text[len("PURPOSE:"):])
		case strings.HasPrefix(upper, "CALLED BY:"):
			section = "calledby"
			appendScriptRefs(&header.CalledBy, text[len("CALLED BY:"):])
		case strings.HasPrefix(upper, "MAJOR RULES:"):
			section = "rules"
		default:
			switch section {
			case "purpose":
				if header.Purpose == "" {
					header.Purpose = strings.TrimSpace(text)
				}
			case "calledby":
				appendScriptRefs(&header.CalledBy, text)
			case "rules":
				if entry := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(text), "-*")); entry != "" {
					header.MajorRules = append(header.MajorRules, entry)
				}
			}
		}
	}
	return header
}

// commentText strips the comment marker for the given language and returns
// the comment body. ok is false when the line is not a comment.
func commentText(line string, lang ScriptLanguage) (string, bool) {
	trimmed := strings.TrimSpace(line)
	markers := []string{"#"}
	if lang == LangJavaScript {
		markers = []string{"//", "*", "/*"}
	}
	for _, m := range markers {
		if strings.HasPrefix(trimmed, m) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, m)), true
		}
	}
	return "", false
}

// appendScriptRefs splits a CALLED BY value into workflow references.
// Values may be comma-separated or one per continuation line.
func appendScriptRefs(refs *[]string, value string) {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(part), "-*"))
		part = strings.TrimSpace(part)
		if part != "" {
			*refs = append(*refs, part)
		}
	}
}

// CheckScript applies the script rules to a parsed script.
// workflowRefs maps script paths (relative to the repo root) to the workflow
// files that reference them; workflowFiles is the set of existing workflow
// file base names.
func CheckScript(s Script, workflowRefs map[string][]string, workflowFiles map[string]bool) []Finding {
	var findings []Finding

	if !s.Header.Found {
		findings = append(findings, Finding{
			Rule:     RuleScriptHeader,
			Severity: SeverityError,
			Path:     s.Path,
			Line:     1,
			Message:  "missing header block (PURPOSE, CALLED BY, MAJOR RULES)",
		})
	} else if missing := s.Header.MissingSections(); len(missing) > 0 {
		findings = append(findings, Finding{
			Rule:     RuleScriptHeader,
			Severity: SeverityError,
			Path:     s.Path,
			Line:     1,
			Message:  "header block missing sections: " + strings.Join(missing, ", "),
		})
	}

	for _, ref := range s.Header.CalledBy {
		base := filepath.Base(ref)
		if !workflowFiles[base] {
			findings = append(findings, Finding{
				Rule:     RuleScriptCalledBy,
				Severity: SeverityWarning,
				Path:     s.Path,
				Line:     1,
				Message:  "CALLED BY references unknown workflow " + ref,
			})
		}
	}

	if len(workflowRefs[s.Path]) == 0 {
		findings = append(findings, Finding{
			Rule:     RuleScriptOrphan,
			Severity: SeverityNotice,
			Path:     s.Path,
			Message:  "script is not referenced by any workflow",
		})
	}

	return findings
}
