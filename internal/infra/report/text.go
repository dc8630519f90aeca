// Package report renders check findings for terminals and machines.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/mizunashi/wfcheck/internal/domain"
)

// Severity colors match the TUI palette.
var (
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// TextRenderer writes findings as aligned, colored lines.
type TextRenderer struct {
	// Color disables styling when false (e.g. piped output).
	Color bool
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{Color: color}
}

// Render writes the findings followed by a summary line.
func (r *TextRenderer) Render(w io.Writer, findings []domain.Finding) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range findings {
		sev := f.Severity.String()
		if r.Color {
			sev = r.style(f.Severity).Render(sev)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Location(), sev, f.Rule, f.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := domain.Summarize(findings)
	line := fmt.Sprintf("%d findings (%d errors, %d warnings, %d notices)",
		summary.Total(), summary.Errors, summary.Warnings, summary.Notices)
	if summary.Total() == 0 {
		line = "no findings"
		if r.Color {
			line = okStyle.Render(line)
		}
	}
	if len(findings) > 0 {
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w, line)
	return nil
}

func (r *TextRenderer) style(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityError:
		return errorStyle
	case domain.SeverityWarning:
		return warningStyle
	default:
		return noticeStyle
	}
}
