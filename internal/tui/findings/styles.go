package findings

import "github.com/charmbracelet/lipgloss"

// Colors used in the findings TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the findings TUI.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Notice   lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Clean    lipgloss.Style
	Location lipgloss.Style
	Rule     lipgloss.Style
	Detail   lipgloss.Style
	Loading  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		Clean: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Location: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		Rule: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		Loading: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
	}
}
