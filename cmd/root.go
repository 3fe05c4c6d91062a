package cmd

import (
	"fmt"

	tomlconfig "github.com/bnema/dscfwd/internal/adapters/config/toml"
	"github.com/bnema/dscfwd/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "dscfwd",
		Short:         "DSC perfusion forward model",
		Long:          "dscfwd predicts dynamic susceptibility contrast signals from perfusion parameters using a convolution model with a Gamma residue function.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if err := app.bindFlags(rootCmd); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newUsageCmd(),
		newParamsCmd(app),
		newPriorsCmd(app),
		newEvaluateCmd(app),
		newDumpCmd(app),
		newARDCmd(app),
		newConfigCmd(),
	)

	return rootCmd
}

func (a *app) bindFlags(rootCmd *cobra.Command) error {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML file with model options")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log model construction and ARD steps")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	flags.String(tomlconfig.KeyScanParams, domain.ScanParamsCmdline, "where scan parameters come from")
	flags.Float64(tomlconfig.KeyTE, 0, "echo time in seconds")
	flags.Float64(tomlconfig.KeyDelt, 0, "time between volumes in seconds")
	flags.Int(tomlconfig.KeyUpsample, 1, "internal grid refinement factor")
	flags.String(tomlconfig.KeyConvMtx, string(domain.ConvolutionSimple), "convolution scheme: simple or voltera")
	flags.String(tomlconfig.KeyAIF, "", "arterial signal file or s3://bucket/key")
	flags.Bool(tomlconfig.KeyInferMTT, false, "infer transit-time mean")
	flags.Bool(tomlconfig.KeyInferLambda, false, "infer transit-time dispersion")
	flags.Bool(tomlconfig.KeyInferDelay, false, "infer bolus delay")
	flags.Bool(tomlconfig.KeyInferArt, false, "infer arterial component")
	flags.Bool(tomlconfig.KeyInferRet, false, "infer tracer retention")
	flags.Bool(tomlconfig.KeyImagePrior, false, "tighten cbf and transitm priors")

	for _, key := range []string{
		tomlconfig.KeyScanParams,
		tomlconfig.KeyTE,
		tomlconfig.KeyDelt,
		tomlconfig.KeyUpsample,
		tomlconfig.KeyConvMtx,
		tomlconfig.KeyAIF,
		tomlconfig.KeyInferMTT,
		tomlconfig.KeyInferLambda,
		tomlconfig.KeyInferDelay,
		tomlconfig.KeyInferArt,
		tomlconfig.KeyInferRet,
		tomlconfig.KeyImagePrior,
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	return nil
}
