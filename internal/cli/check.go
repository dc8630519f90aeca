package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mizunashi/wfcheck/internal/app"
	"github.com/mizunashi/wfcheck/internal/domain"
	"github.com/mizunashi/wfcheck/internal/infra/report"
	"github.com/mizunashi/wfcheck/internal/usecase"
)

// ErrCheckFailed is returned when findings at or above the fail-on threshold
// exist. The report has already been printed; main exits nonzero without an
// extra message.
var ErrCheckFailed = errors.New("check failed")

// checkFlags are the reporting flags shared by every check command.
type checkFlags struct {
	format string
	failOn string
}

func (f *checkFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&f.failOn, "fail-on", "error", "Exit nonzero when a finding at or above this severity exists")
}

// render writes the findings and returns ErrCheckFailed when the fail-on
// threshold is met.
func (f *checkFlags) render(w io.Writer, findings []domain.Finding) error {
	failSev, err := domain.ParseSeverity(f.failOn)
	if err != nil {
		return err
	}

	var renderer interface {
		Render(io.Writer, []domain.Finding) error
	}
	switch f.format {
	case "text":
		renderer = report.NewTextRenderer(true)
	case "json":
		renderer = report.NewJSONRenderer()
	default:
		return fmt.Errorf("unknown format %q (want text or json)", f.format)
	}
	if err := renderer.Render(w, findings); err != nil {
		return err
	}

	if domain.Summarize(findings).AtOrAbove(failSev) > 0 {
		return ErrCheckFailed
	}
	return nil
}

// newCheckCommand creates the check command.
func newCheckCommand(c *app.Container) *cobra.Command {
	var flags checkFlags
	var only []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run every convention check",
		Long: `Run the guide, workflow, script and changelog checks and print the
merged findings.

Exit status is 1 when a finding at or above --fail-on exists, so the
command can gate CI directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := make([]domain.CheckKind, 0, len(only))
			for _, name := range only {
				kind, err := domain.ParseCheckKind(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}

			uc := c.CheckAllUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CheckAllInput{Kinds: kinds})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), out.Findings)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&only, "only", nil, "Restrict to check kinds: guides, workflows, scripts, changelog")
	return cmd
}
