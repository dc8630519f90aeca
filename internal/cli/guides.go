package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newGuidesCommand creates the guides command.
func newGuidesCommand(c *app.Container) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "guides [file...]",
		Short: "Check the workflow guide documents",
		Long: `Check the Markdown guides: heading structure, fence language tags,
workflow examples referencing their script, and script example headers.

Without arguments every file matching the configured guide globs is
checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CheckGuidesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CheckGuidesInput{Paths: args})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), out.Findings)
		},
	}

	flags.register(cmd)
	return cmd
}
