package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/dscfwd/internal/application"
	"github.com/bnema/dscfwd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestUsageListsModelOptions(t *testing.T) {
	stdout, _, err := executeCLI(t, "usage")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--convmtx")
	assert.Contains(t, stdout, "--inferart")
}

func TestParamsTable(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "params", "--infermtt", "--inferdelay")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "dsc-convolution 1.8")
	assert.Contains(t, stdout, "params: 4")
	assert.Contains(t, stdout, "transitm")
	assert.Contains(t, stdout, "delay")
	assert.NotContains(t, stdout, "prior mean")
}

func TestParamsJSON(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "params", "--inferart", "--format", "json")...)
	require.NoError(t, err)

	var slots []paramSlot
	require.NoError(t, json.Unmarshal([]byte(stdout), &slots))
	assert.Equal(t, []paramSlot{
		{Index: 0, Name: "cbf"},
		{Index: 1, Name: "sig0"},
		{Index: 2, Name: "abv", ARD: true},
		{Index: 3, Name: "artdelay"},
	}, slots)
}

func TestPriorsYAML(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "priors", "--infermtt", "--imageprior", "--format", "yaml")...)
	require.NoError(t, err)

	var infos []application.ParamInfo
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "transitm", infos[1].Name)
	assert.Equal(t, 1.5, infos[1].PriorMean)
	assert.Equal(t, 100.0, infos[1].PriorPrecision)
	assert.Equal(t, 0.1, infos[0].PosteriorMean)
}

func TestPriorsTableMarksARD(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "priors", "--inferart")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "prior mean")
	assert.Contains(t, stdout, "abv")
	assert.Contains(t, stdout, "[ard]")
}

func TestEvaluateZeroFlowReturnsBaseline(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params", "0,100", "--format", "json")...)
	require.NoError(t, err)

	var evals []application.Evaluation
	require.NoError(t, json.Unmarshal([]byte(stdout), &evals))
	require.Len(t, evals, 1)
	assert.False(t, evals[0].Reset)
	assert.Equal(t, []float64{100, 100, 100, 100, 100, 100}, evals[0].Signal)
}

func TestEvaluateNonFiniteIsZeroedAndLogged(t *testing.T) {
	stdout, stderr, err := executeCLI(t, modelArgs(t, "evaluate", "--infermtt", "--params", "0.5,1e6,100", "--format", "json")...)
	require.NoError(t, err)

	var evals []application.Evaluation
	require.NoError(t, json.Unmarshal([]byte(stdout), &evals))
	require.Len(t, evals, 1)
	assert.True(t, evals[0].Reset)
	assert.Equal(t, make([]float64, 6), evals[0].Signal)
	assert.Contains(t, stderr, "non-finite prediction replaced with zeros")
}

func TestEvaluateTableShowsSignal(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params", "0,100")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "evaluations: 1")
	assert.Contains(t, stdout, "signal: 100 100 100 100 100 100")
}

func TestEvaluateParamsFileBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, os.WriteFile(path, []byte("# cbf sig0\n0 100\n\n0,50\n"), 0o600))

	stdout, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params-file", path, "--format", "json")...)
	require.NoError(t, err)

	var evals []application.Evaluation
	require.NoError(t, json.Unmarshal([]byte(stdout), &evals))
	require.Len(t, evals, 2)
	assert.Equal(t, 50.0, evals[1].Signal[0])
}

func TestEvaluateParamsFileTableUsesSpinner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 100\n0 80\n"), 0o600))

	stdout, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params-file", path)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "evaluations: 2")
	assert.Contains(t, stdout, "#2")
}

func TestEvaluateRequiresParams(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "evaluate")...)
	require.ErrorIs(t, err, errNoParams)
}

func TestEvaluateRejectsWrongParamCount(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params", "0.1,100,3")...)
	require.ErrorIs(t, err, domain.ErrParamCount)
	assert.Contains(t, err.Error(), "cbf, sig0")
}

func TestEvaluateRejectsUnknownFormat(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params", "0,100", "--format", "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestModelRequiresAIF(t *testing.T) {
	_, _, err := executeCLI(t, "params", "--te", "0.065", "--delt", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aif")
}

func TestModelRejectsScanParamsOtherThanCmdline(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "params", "--scan-params", "file")...)
	require.ErrorIs(t, err, domain.ErrUnsupportedScanParams)
}

func TestModelRejectsUnknownConvolution(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "params", "--convmtx", "fft")...)
	require.ErrorIs(t, err, domain.ErrUnknownConvolution)
}

func TestModelOptionsFromEnvironment(t *testing.T) {
	t.Setenv("DSCFWD_TE", "0.065")
	t.Setenv("DSCFWD_DELT", "1.5")
	t.Setenv("DSCFWD_AIF", writeAIF(t))
	t.Setenv("DSCFWD_INFERRET", "true")

	stdout, _, err := executeCLI(t, "params", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "ret"`)
}

func TestDumpParameters(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "dump", "--params", "0.5,100", "--indent", "  ")...)
	require.NoError(t, err)
	assert.Equal(t, "  cbf = 0.5\n  sig0 = 100\n", stdout)
}

func TestDumpRequiresParamsFlag(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "dump")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"params\" not set")
}

func TestARDRoundsJSON(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "ard", "--inferart", "--iterations", "2", "--format", "json")...)
	require.NoError(t, err)

	var steps []application.ARDStep
	require.NoError(t, json.Unmarshal([]byte(stdout), &steps))
	require.Len(t, steps, 3)
	assert.Equal(t, "setup", string(steps[0].Phase))
	assert.Equal(t, "update", string(steps[2].Phase))
	assert.Equal(t, 2, steps[2].Iteration)
	assert.InDelta(t, 0.1, steps[2].PriorVariances[2], 1e-12)
}

func TestARDTable(t *testing.T) {
	stdout, _, err := executeCLI(t, modelArgs(t, "ard", "--inferart")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ard steps: 2")
	assert.Contains(t, stdout, "setup 0")
	assert.Contains(t, stdout, "abv=")
}

func TestARDRejectsNegativeIterations(t *testing.T) {
	_, _, err := executeCLI(t, modelArgs(t, "ard", "--iterations", "-1")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestConfigInitStdout(t *testing.T) {
	stdout, _, err := executeCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "te = 0.065")
	assert.Contains(t, stdout, "convmtx = 'simple'")
}

func TestConfigInitFileRoundTripsThroughConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")

	stdout, _, err := executeCLI(t, "config", "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+path)

	_, _, err = executeCLI(t, "config", "init", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout, _, err = executeCLI(t, "params", "--config", path, "--aif", writeAIF(t), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "transitm"`)
	assert.Contains(t, stdout, `"name": "lambda"`)
	assert.Contains(t, stdout, `"name": "delay"`)
}

func TestMetricsFileWrittenOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dscfwd.prom")

	_, _, err := executeCLI(t, modelArgs(t, "evaluate", "--params", "0,100", "--format", "json", "--metrics-file", path)...)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dscfwd_evaluations_total 1")
	assert.Contains(t, string(data), "dscfwd_nonfinite_predictions_total 0")
}

func TestVerboseLogsModelConstruction(t *testing.T) {
	_, stderr, err := executeCLI(t, modelArgs(t, "params", "--verbose")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "built dsc model")
}

// modelArgs prefixes args with a minimal valid model configuration.
func modelArgs(t *testing.T, args ...string) []string {
	t.Helper()
	return append(args, "--te", "0.065", "--delt", "1.5", "--aif", writeAIF(t))
}

func writeAIF(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "aif.txt")
	samples := []string{"100", "98", "60", "45", "80", "95"}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(samples, "\n")+"\n"), 0o600))

	return path
}

func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
