package cmd

import (
	"github.com/bnema/dscfwd/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newARDCmd(app *app) *cobra.Command {
	var (
		iterations int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "ard",
		Short: "Run ARD setup and update rounds against the initial posterior",
		Long:  "ard applies the ARD setup phase to the hardcoded prior, then the given number of update rounds, and prints the free-energy contribution of each phase. Enable --inferart to get an ARD parameter.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			sess, err := app.open(cmd)
			if err != nil {
				return err
			}

			prior, posterior := sess.model.HardcodedInitialDists()
			steps, err := sess.service.RunARD(cmd.Context(), sess.model, posterior, prior, iterations)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, app, format, steps, report.Report{
				Title: sess.model.ModelVersion(),
				ARD:   steps,
				Names: sess.model.NameParams(),
			}); err != nil {
				return err
			}

			return sess.close()
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 1, "number of update rounds after setup")
	addFormatFlag(cmd, &format)

	return cmd
}
