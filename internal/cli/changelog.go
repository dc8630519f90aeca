package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newChangelogCommand creates the changelog command.
func newChangelogCommand(c *app.Container) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "changelog [file]",
		Short: "Check the changelog structure",
		Long: `Check the changelog: release sections use the allowed heading set,
an Unreleased section exists, and every section carries bullet entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.CheckChangelogInput{}
			if len(args) == 1 {
				in.Path = args[0]
			}

			uc := c.CheckChangelogUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if !out.Found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s not found, nothing to check\n", out.Path)
				return nil
			}
			return flags.render(cmd.OutOrStdout(), out.Findings)
		},
	}

	flags.register(cmd)
	return cmd
}
