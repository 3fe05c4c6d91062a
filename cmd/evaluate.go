package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/dscfwd/internal/adapters/render/report"
	"github.com/bnema/dscfwd/internal/application"
	"github.com/spf13/cobra"
)

var errNoParams = errors.New("one of --params or --params-file is required")

func newEvaluateCmd(app *app) *cobra.Command {
	var (
		rawParams  string
		paramsFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Predict the DSC signal for one or more parameter vectors",
		Example: `  dscfwd evaluate --te 0.065 --delt 1.5 --aif aif.txt --params 0.5,100
  dscfwd evaluate --config model.toml --params-file vectors.txt --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			batch, err := readParamVectors(rawParams, paramsFile)
			if err != nil {
				return err
			}

			sess, err := app.open(cmd)
			if err != nil {
				return err
			}

			evaluate := func(ctx context.Context, onProgress func(application.BatchProgress)) ([]application.Evaluation, error) {
				return sess.service.EvaluateBatch(ctx, sess.model, batch, onProgress)
			}

			var evals []application.Evaluation
			if paramsFile != "" && format == formatTable {
				evals, err = runBatchProgress(cmd.Context(), cmd.ErrOrStderr(), len(batch), evaluate)
			} else {
				evals, err = evaluate(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, app, format, evals, report.Report{
				Title:       sess.model.ModelVersion(),
				Evaluations: evals,
			}); err != nil {
				return err
			}

			return sess.close()
		},
	}

	cmd.Flags().StringVar(&rawParams, "params", "", "comma separated parameter vector")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "file with one parameter vector per line")
	cmd.MarkFlagsMutuallyExclusive("params", "params-file")
	addFormatFlag(cmd, &format)

	return cmd
}

func readParamVectors(rawParams, paramsFile string) ([][]float64, error) {
	if paramsFile == "" {
		if strings.TrimSpace(rawParams) == "" {
			return nil, errNoParams
		}
		vec, err := application.ParseParams(rawParams)
		if err != nil {
			return nil, err
		}
		return [][]float64{vec}, nil
	}

	data, err := os.ReadFile(paramsFile)
	if err != nil {
		return nil, fmt.Errorf("read params file: %w", err)
	}

	batch, err := application.ParseParamsBatch(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse params file %q: %w", paramsFile, err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("params file %q holds no parameter vectors", paramsFile)
	}

	return batch, nil
}
