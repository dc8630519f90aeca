package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newScriptsCommand creates the scripts command.
func newScriptsCommand(c *app.Container) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "scripts [file...]",
		Short: "Check the companion automation scripts",
		Long: `Check the companion scripts: the PURPOSE / CALLED BY / MAJOR RULES
header block, that CALLED BY names existing workflow files, and that
every script is referenced by at least one workflow.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CheckScriptsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CheckScriptsInput{Paths: args})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), out.Findings)
		},
	}

	flags.register(cmd)
	return cmd
}
