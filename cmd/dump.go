package cmd

import (
	"fmt"

	"github.com/bnema/dscfwd/internal/application"
	"github.com/bnema/dscfwd/internal/domain"
	"github.com/spf13/cobra"
)

func newDumpCmd(app *app) *cobra.Command {
	var (
		rawParams string
		indent    string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a parameter vector as name = value lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			vec, err := application.ParseParams(rawParams)
			if err != nil {
				return err
			}

			sess, err := app.open(cmd)
			if err != nil {
				return err
			}
			if len(vec) != sess.model.NumParams() {
				return fmt.Errorf("%w: got %d values, want %d", domain.ErrParamCount, len(vec), sess.model.NumParams())
			}

			if _, err := fmt.Fprint(cmd.OutOrStdout(), sess.model.DumpParameters(vec, indent)); err != nil {
				return err
			}

			return sess.close()
		},
	}

	cmd.Flags().StringVar(&rawParams, "params", "", "comma separated parameter vector")
	cmd.Flags().StringVar(&indent, "indent", "", "prefix for every line")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}
