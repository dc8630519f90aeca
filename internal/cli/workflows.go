package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newWorkflowsCommand creates the workflows command.
func newWorkflowsCommand(c *app.Container) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "workflows [file...]",
		Short: "Check the workflow YAML files",
		Long: `Check the GitHub Actions workflows: script references resolve,
concurrency groups on issue and PR triggers, no cancel-in-progress on
mutating workflows, pinned third-party actions, job timeouts, inline
credentials, and a dry_run input on dispatchable script workflows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CheckWorkflowsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CheckWorkflowsInput{Paths: args})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), out.Findings)
		},
	}

	flags.register(cmd)
	return cmd
}
