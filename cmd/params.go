package cmd

import (
	"github.com/bnema/dscfwd/internal/adapters/render/report"
	"github.com/bnema/dscfwd/internal/application"
	"github.com/spf13/cobra"
)

type paramSlot struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	ARD   bool   `json:"ard" yaml:"ard"`
}

func newParamsCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the parameter vector layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParams(cmd, app, format, false)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func newPriorsCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "priors",
		Short: "Show the initial prior and posterior of every parameter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParams(cmd, app, format, true)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}

func runParams(cmd *cobra.Command, app *app, format string, dists bool) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	sess, err := app.open(cmd)
	if err != nil {
		return err
	}

	infos := sess.service.Params(sess.model)
	var data any = infos
	if !dists {
		data = slotsOf(infos)
	}

	if err := writeOutput(cmd, app, format, data, report.Report{
		Title:  sess.model.ModelVersion(),
		Params: infos,
		Dists:  dists,
	}); err != nil {
		return err
	}

	return sess.close()
}

func slotsOf(infos []application.ParamInfo) []paramSlot {
	slots := make([]paramSlot, 0, len(infos))
	for _, info := range infos {
		slots = append(slots, paramSlot{Index: info.Index, Name: info.Name, ARD: info.ARD})
	}
	return slots
}
