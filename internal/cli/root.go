// Package cli provides the command-line interface for wfcheck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
)

// Command group IDs.
const (
	groupChecks = "checks"
	groupSetup  = "setup"
)

// NewRootCommand creates the root command for wfcheck.
// It receives the container for dependency injection and version for display.
// The container may be nil outside a git repository; only commands that work
// without one are expected to run then.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "wfcheck",
		Short: "GitHub Actions workflow convention linter",
		Long: `wfcheck lints the workflow conventions of a repository: the workflow
guides under docs/, the workflow YAML under .github/workflows/, the
companion scripts under .github/scripts/, and the changelog.

Every finding carries a stable rule ID; see "wfcheck rules" for the
catalog. Rules can be disabled or re-leveled in wfcheck.toml.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupChecks, Title: "Checks:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	checkCmd := newCheckCommand(c)
	checkCmd.GroupID = groupChecks

	guidesCmd := newGuidesCommand(c)
	guidesCmd.GroupID = groupChecks

	workflowsCmd := newWorkflowsCommand(c)
	workflowsCmd.GroupID = groupChecks

	scriptsCmd := newScriptsCommand(c)
	scriptsCmd.GroupID = groupChecks

	changelogCmd := newChangelogCommand(c)
	changelogCmd.GroupID = groupChecks

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupChecks

	rulesCmd := newRulesCommand(c)
	rulesCmd.GroupID = groupSetup

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	root.AddCommand(
		checkCmd,
		guidesCmd,
		workflowsCmd,
		scriptsCmd,
		changelogCmd,
		tuiCmd,
		rulesCmd,
		initCmd,
	)

	return root
}
