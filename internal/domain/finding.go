package domain

import (
	"fmt"
	"sort"
)

// Severity classifies how serious a finding is.
// The tiers mirror the error taxonomy the guides document for automation
// scripts: notices are advisory, warnings are convention drift a contributor
// should fix, errors are violations that fail CI.
type Severity int

const (
	SeverityNotice Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name as used in config files and flags.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "notice":
		return SeverityNotice, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
}

// Finding is a single convention violation reported by a rule.
// Fields are ordered to minimize memory padding.
type Finding struct {
	Rule     string   // Rule ID (e.g. "workflow-concurrency")
	Path     string   // File the finding applies to, relative to the repo root
	Message  string   // Human-readable description
	Line     int      // 1-based line number; 0 means the whole file
	Severity Severity // Effective severity after config overrides
}

// Location renders the path[:line] prefix used in reports.
func (f Finding) Location() string {
	if f.Line <= 0 {
		return f.Path
	}
	return fmt.Sprintf("%s:%d", f.Path, f.Line)
}

// SortFindings orders findings by path, line, then rule ID so that reports
// are deterministic for identical inputs.
func SortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Path != fs[j].Path {
			return fs[i].Path < fs[j].Path
		}
		if fs[i].Line != fs[j].Line {
			return fs[i].Line < fs[j].Line
		}
		return fs[i].Rule < fs[j].Rule
	})
}

// Summary counts findings per severity.
type Summary struct {
	Notices  int
	Warnings int
	Errors   int
}

// Summarize tallies the given findings.
func Summarize(fs []Finding) Summary {
	var s Summary
	for _, f := range fs {
		switch f.Severity {
		case SeverityNotice:
			s.Notices++
		case SeverityWarning:
			s.Warnings++
		case SeverityError:
			s.Errors++
		}
	}
	return s
}

// Total returns the total number of findings.
func (s Summary) Total() int {
	return s.Notices + s.Warnings + s.Errors
}

// AtOrAbove reports how many findings sit at or above the given severity.
func (s Summary) AtOrAbove(level Severity) int {
	n := s.Errors
	if level <= SeverityWarning {
		n += s.Warnings
	}
	if level <= SeverityNotice {
		n += s.Notices
	}
	return n
}
