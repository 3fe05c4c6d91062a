package cmd

import (
	"errors"
	"fmt"
	"os"

	tomlconfig "github.com/bnema/dscfwd/internal/adapters/config/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage model configuration files",
	}

	configCmd.AddCommand(newConfigInitCmd())

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example TOML model configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" || output == "-" {
				return tomlconfig.Write(cmd.OutOrStdout(), tomlconfig.ExampleConfig())
			}

			flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(output, flag, 0o644)
			if err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("config file %q already exists (use --force to overwrite)", output)
				}
				return fmt.Errorf("create config file: %w", err)
			}

			if err := tomlconfig.Write(f, tomlconfig.ExampleConfig()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close config file: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
