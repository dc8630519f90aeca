package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/infra/config"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default wfcheck.toml",
		Long: `Write the commented default configuration.

Without --global the file is created at the repository root. With
--global it is created under $XDG_CONFIG_HOME/wfcheck/ and applies to
every repository; this works outside a git repository too.

Error conditions:
- Config already exists: the existing file is left untouched`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var uc *usecase.InitConfig
			if c != nil {
				uc = c.InitConfigUseCase()
			} else {
				if !global {
					return domain.ErrNotGitRepository
				}
				uc = usecase.NewInitConfig(config.NewManager(""))
			}

			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{Global: global})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Write the global config instead of the repository config")
	return cmd
}
