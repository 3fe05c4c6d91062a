package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/dscfwd/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchProgressModelShowsCountsAndZeroed(t *testing.T) {
	updates := make(chan tea.Msg)
	m := newBatchProgressModel(5, updates)
	assert.Contains(t, m.View(), "Evaluating 0/5 vectors...")
	assert.NotContains(t, m.View(), "zeroed")

	next, cmd := m.Update(batchProgressMsg{Done: 2, Total: 5, Reset: 1})
	require.NotNil(t, cmd)
	m = next.(batchProgressModel)
	assert.Contains(t, m.View(), "Evaluating 2/5 vectors...")
	assert.Contains(t, m.View(), "1 zeroed")

	evals := []application.Evaluation{{Signal: []float64{100}}}
	next, cmd = m.Update(batchDoneMsg{evals: evals})
	require.NotNil(t, cmd)
	m = next.(batchProgressModel)
	assert.True(t, m.done)
	assert.Equal(t, evals, m.evals)
	assert.Empty(t, m.View())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunBatchProgressReturnsEvaluations(t *testing.T) {
	var out bytes.Buffer
	evals, err := runBatchProgress(context.Background(), &out, 2,
		func(_ context.Context, onProgress func(application.BatchProgress)) ([]application.Evaluation, error) {
			onProgress(application.BatchProgress{Done: 1, Total: 2})
			onProgress(application.BatchProgress{Done: 2, Total: 2, Reset: 1})
			return []application.Evaluation{{Reset: false}, {Reset: true}}, nil
		})

	require.NoError(t, err)
	require.Len(t, evals, 2)
	assert.True(t, evals[1].Reset)
}

func TestRunBatchProgressReturnsWorkError(t *testing.T) {
	workErr := errors.New("vector 3: bad")
	_, err := runBatchProgress(context.Background(), &bytes.Buffer{}, 3,
		func(context.Context, func(application.BatchProgress)) ([]application.Evaluation, error) {
			return nil, workErr
		})

	require.ErrorIs(t, err, workErr)
}
