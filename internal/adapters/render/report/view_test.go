package report

import (
	"testing"

	"github.com/bnema/dscfwd/internal/application"
	"github.com/bnema/dscfwd/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParams(t *testing.T) {
	output, err := Render(Report{
		Title: "dsc-convolution 1.8",
		Dists: true,
		Params: []application.ParamInfo{
			{Index: 0, Name: "cbf", PriorMean: 0, PriorPrecision: 1e-12, PosteriorMean: 0.1, PosteriorPrecision: 10},
			{Index: 1, Name: "sig0", PriorMean: 100, PriorPrecision: 1e-6, PosteriorMean: 100, PosteriorPrecision: 1e-6},
			{Index: 2, Name: "abv", ARD: true, PriorPrecision: 1e-12, PosteriorPrecision: 10},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "dsc-convolution 1.8")
	assert.Contains(t, output, "params: 3")
	assert.Contains(t, output, "prior mean")
	assert.Contains(t, output, "cbf")
	assert.Contains(t, output, "1e-12")
	assert.Contains(t, output, "[ard]")
	assert.NotContains(t, output, "Nothing to show.")
}

func TestRenderParamsWithoutDists(t *testing.T) {
	output, err := Render(Report{
		Title:  "params",
		Params: []application.ParamInfo{{Index: 0, Name: "cbf"}, {Index: 1, Name: "sig0"}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "params: 2")
	assert.Contains(t, output, "sig0")
	assert.NotContains(t, output, "prior mean")
}

func TestRenderEvaluationsMarksReset(t *testing.T) {
	output, err := Render(Report{
		Title: "evaluate",
		Evaluations: []application.Evaluation{
			{Params: []float64{0.5, 100}, Signal: []float64{100, 95.5, 90}},
			{Params: []float64{1e308, 100}, Signal: []float64{0, 0, 0}, Reset: true},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "evaluations: 2")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "#2")
	assert.Contains(t, output, "signal: 100 95.5 90")
	assert.Contains(t, output, "params: 1e+308 100")
	assert.Contains(t, output, "[non-finite, zeroed]")
}

func TestRenderARDLabelsVariances(t *testing.T) {
	output, err := Render(Report{
		Title: "ard",
		Names: []string{"cbf", "abv"},
		ARD: []application.ARDStep{
			{Phase: ports.ARDPhaseSetup, Iteration: 0, FreeEnergy: 0.4866, PriorVariances: []float64{1e12, 1e12}},
			{Phase: ports.ARDPhaseUpdate, Iteration: 1, FreeEnergy: 0.4866, PriorVariances: []float64{1e12, 1}},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "ard steps: 2")
	assert.Contains(t, output, "setup 0")
	assert.Contains(t, output, "update 1")
	assert.Contains(t, output, "0.4866")
	assert.Contains(t, output, "abv=1")
}

func TestRenderEmptyReport(t *testing.T) {
	output, err := Render(Report{Title: "empty"})

	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to show.")
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", sparkline(nil))
	assert.Equal(t, "▁▁▁", sparkline([]float64{5, 5, 5}))
	assert.Equal(t, "▁█", sparkline([]float64{0, 1}))
	assert.Equal(t, '█', []rune(sparkline([]float64{3, 1, 2}))[0])
}
