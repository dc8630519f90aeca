package report

import (
	"encoding/json"
	"io"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// jsonFinding is the wire form of a finding.
type jsonFinding struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
}

// jsonReport is the wire form of a full report.
type jsonReport struct {
	Findings []jsonFinding `json:"findings"`
	Summary  jsonSummary   `json:"summary"`
}

type jsonSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Notices  int `json:"notices"`
}

// JSONRenderer writes findings as a single JSON document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render writes the findings and summary as indented JSON.
func (r *JSONRenderer) Render(w io.Writer, findings []domain.Finding) error {
	out := jsonReport{
		Findings: make([]jsonFinding, 0, len(findings)),
	}
	for _, f := range findings {
		out.Findings = append(out.Findings, jsonFinding{
			Rule:     f.Rule,
			Severity: f.Severity.String(),
			Path:     f.Path,
			Line:     f.Line,
			Message:  f.Message,
		})
	}
	summary := domain.Summarize(findings)
	out.Summary = jsonSummary{
		Errors:   summary.Errors,
		Warnings: summary.Warnings,
		Notices:  summary.Notices,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
