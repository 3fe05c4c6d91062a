package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/dscfwd/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type batchWork func(ctx context.Context, onProgress func(application.BatchProgress)) ([]application.Evaluation, error)

type batchProgressMsg application.BatchProgress

type batchDoneMsg struct {
	evals []application.Evaluation
	err   error
}

// batchProgressModel follows a batch evaluation running on another goroutine.
// Every update arrives on updates; each one re-arms the wait for the next.
type batchProgressModel struct {
	spinner  spinner.Model
	updates  <-chan tea.Msg
	progress application.BatchProgress
	zeroed   lipgloss.Style
	evals    []application.Evaluation
	err      error
	done     bool
}

func newBatchProgressModel(total int, updates <-chan tea.Msg) batchProgressModel {
	return batchProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		updates:  updates,
		progress: application.BatchProgress{Total: total},
		zeroed:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func waitForBatch(updates <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m batchProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForBatch(m.updates))
}

func (m batchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case batchProgressMsg:
		m.progress = application.BatchProgress(msg)
		return m, waitForBatch(m.updates)
	case batchDoneMsg:
		m.done = true
		m.evals = msg.evals
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m batchProgressModel) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s Evaluating %d/%d vectors...", m.spinner.View(), m.progress.Done, m.progress.Total)
	if m.progress.Reset > 0 {
		line += " " + m.zeroed.Render(fmt.Sprintf("%d zeroed", m.progress.Reset))
	}

	return line
}

// runBatchProgress runs work while drawing its progress on output.
func runBatchProgress(ctx context.Context, output io.Writer, total int, work batchWork) ([]application.Evaluation, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan tea.Msg)
	send := func(msg tea.Msg) {
		select {
		case updates <- msg:
		case <-ctx.Done():
		}
	}

	go func() {
		evals, err := work(ctx, func(p application.BatchProgress) {
			send(batchProgressMsg(p))
		})
		send(batchDoneMsg{evals: evals, err: err})
	}()

	p := tea.NewProgram(
		newBatchProgressModel(total, updates),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(batchProgressModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.evals, result.err
}
