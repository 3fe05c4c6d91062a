package cmd

import (
	"fmt"

	"github.com/bnema/dscfwd/internal/dsc"
	"github.com/spf13/cobra"
)

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Describe the model options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), dsc.Usage())
			return err
		},
	}
}
