// Package findings implements the interactive findings browser.
package findings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// Runner executes a full check run. *usecase.CheckAll satisfies it; tests
// substitute a stub.
type Runner interface {
	Execute(ctx context.Context, in usecase.CheckAllInput) (*usecase.CheckAllOutput, error)
}

// severityFilter selects which findings are visible.
type severityFilter int

const (
	filterAll severityFilter = iota
	filterError
	filterWarning
	filterNotice
)

func (f severityFilter) String() string {
	switch f {
	case filterError:
		return "errors"
	case filterWarning:
		return "warnings"
	case filterNotice:
		return "notices"
	default:
		return "all"
	}
}

// matches reports whether a finding passes the filter.
func (f severityFilter) matches(s domain.Severity) bool {
	switch f {
	case filterError:
		return s == domain.SeverityError
	case filterWarning:
		return s == domain.SeverityWarning
	case filterNotice:
		return s == domain.SeverityNotice
	default:
		return true
	}
}

const chromeLines = 6 // title, subtitle, blank, help and margins

// Model is the findings TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	runner Runner

	// State
	findings []domain.Finding
	summary  domain.Summary
	err      error

	// Components
	keys   KeyMap
	styles Styles

	// Numeric state
	cursor  int
	width   int
	height  int
	checked int
	filter  severityFilter

	// Boolean state
	loading    bool
	showDetail bool
}

// New creates a new findings TUI model.
func New(runner Runner) *Model {
	return &Model{
		runner:  runner,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		loading: true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadFindings()
}

// loadFindings runs the checks in the background.
func (m *Model) loadFindings() tea.Cmd {
	return func() tea.Msg {
		out, err := m.runner.Execute(context.Background(), usecase.CheckAllInput{})
		if err != nil {
			return MsgFindingsLoaded{Err: err}
		}
		return MsgFindingsLoaded{
			Findings: out.Findings,
			Summary:  out.Summary,
			Checked:  out.Checked,
		}
	}
}

// visible returns the findings passing the current filter.
func (m *Model) visible() []domain.Finding {
	if m.filter == filterAll {
		return m.findings
	}
	var out []domain.Finding
	for _, f := range m.findings {
		if m.filter.matches(f.Severity) {
			out = append(out, f)
		}
	}
	return out
}

// pageSize returns the number of list rows per page.
func (m *Model) pageSize() int {
	size := m.height - chromeLines
	if size < 1 {
		return 1
	}
	return size
}

// clampCursor keeps the cursor inside the visible findings.
func (m *Model) clampCursor() {
	if max := len(m.visible()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgFindingsLoaded:
		m.loading = false
		m.err = msg.Err
		m.findings = msg.Findings
		m.summary = msg.Summary
		m.checked = msg.Checked
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.showDetail {
			m.showDetail = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.pageSize()
		m.clampCursor()

	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.pageSize()
		m.clampCursor()

	case key.Matches(msg, m.keys.Enter):
		if len(m.visible()) > 0 {
			m.showDetail = !m.showDetail
		}

	case key.Matches(msg, m.keys.Filter):
		m.filter = (m.filter + 1) % 4
		m.cursor = 0
		m.showDetail = false

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.showDetail = false
		return m, m.loadFindings()
	}
	return m, nil
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("wfcheck"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Loading.Render("running checks..."))
		b.WriteString("\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"%d files checked, %d errors, %d warnings, %d notices (showing %s)",
		m.checked, m.summary.Errors, m.summary.Warnings, m.summary.Notices, m.filter,
	)))
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Clean.Render("no findings"))
		b.WriteString("\n")
	} else {
		m.viewList(&b, visible)
	}

	if m.showDetail && m.cursor < len(visible) {
		b.WriteString("\n")
		b.WriteString(m.viewDetail(visible[m.cursor]))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ move · enter detail · f filter · r re-run · q quit"))
	b.WriteString("\n")
	return b.String()
}

// viewList renders the visible findings with the cursor window applied.
func (m *Model) viewList(b *strings.Builder, visible []domain.Finding) {
	page := m.pageSize()
	start := 0
	if m.cursor >= page {
		start = m.cursor - page + 1
	}
	end := start + page
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		f := visible[i]
		line := fmt.Sprintf("%s %s  %s  %s",
			m.severityStyle(f.Severity).Render(severityGlyph(f.Severity)),
			m.styles.Location.Render(f.Location()),
			f.Message,
			m.styles.Rule.Render(f.Rule),
		)
		if m.width > 0 {
			line = truncate.StringWithTail(line, uint(m.width-2), "…")
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
}

// viewDetail renders the detail box for one finding.
func (m *Model) viewDetail(f domain.Finding) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("rule:     %s", f.Rule))
	lines = append(lines, fmt.Sprintf("severity: %s", f.Severity))
	lines = append(lines, fmt.Sprintf("location: %s", f.Location()))
	if rule, err := domain.LookupRule(f.Rule); err == nil {
		lines = append(lines, fmt.Sprintf("summary:  %s", rule.Summary))
	}
	lines = append(lines, "", f.Message)
	return m.styles.Detail.Render(strings.Join(lines, "\n"))
}

func (m *Model) severityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityError:
		return m.styles.Error
	case domain.SeverityWarning:
		return m.styles.Warning
	default:
		return m.styles.Notice
	}
}

// severityGlyph returns the one-character marker for a severity.
func severityGlyph(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return "E"
	case domain.SeverityWarning:
		return "W"
	default:
		return "N"
	}
}
