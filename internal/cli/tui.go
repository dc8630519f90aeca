package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/tui/findings"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse findings interactively",
		Long:  `Run every check and browse the findings: navigate, filter by severity, open details, re-run.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the findings browser.
func launchTUI(c *app.Container) error {
	model := findings.New(c.CheckAllUseCase())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
