package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newRulesCommand creates the rules command.
func newRulesCommand(c *app.Container) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rule catalog with effective severities",
		Long: `Print every rule with its ID, effective severity and summary. Severity
overrides and disabled rules from wfcheck.toml are reflected; outside a
repository the catalog defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ListRulesInput{}
			if kindName != "" {
				kind, err := domain.ParseCheckKind(kindName)
				if err != nil {
					return err
				}
				in.Kind = kind
			}

			uc := c.ListRulesUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range out.Rules {
				sev := info.Severity.String()
				if info.Disabled {
					sev = "disabled"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Rule.ID, sev, info.Rule.Summary)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "Restrict to one check kind: guides, workflows, scripts, changelog")
	return cmd
}
