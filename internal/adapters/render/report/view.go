package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/dscfwd/internal/application"
	"github.com/charmbracelet/lipgloss"
)

// Report is the content of one rendered view. Empty sections are omitted.
// Dists adds the prior and posterior columns to the params table. Names
// labels ARD prior variances and is ignored when its length does not match.
type Report struct {
	Title       string
	Params      []application.ParamInfo
	Dists       bool
	Evaluations []application.Evaluation
	ARD         []application.ARDStep
	Names       []string
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func renderView(r Report, s styles) string {
	lines := []string{s.title.Render(r.Title)}

	if len(r.Params) > 0 {
		lines = append(lines, s.section.Render(renderParams(r.Params, r.Dists, s)))
	}
	if len(r.Evaluations) > 0 {
		lines = append(lines, s.section.Render(renderEvaluations(r.Evaluations, s)))
	}
	if len(r.ARD) > 0 {
		lines = append(lines, s.section.Render(renderARD(r.ARD, r.Names, s)))
	}
	if len(lines) == 1 {
		lines = append(lines, s.empty.Render("Nothing to show."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderParams(params []application.ParamInfo, dists bool, s styles) string {
	col := func(text string) string {
		return s.header.Width(14).Align(lipgloss.Right).Render(text)
	}

	header := []string{
		s.header.Width(4).Render("#"),
		s.header.Width(10).Render("name"),
	}
	if dists {
		header = append(header, col("prior mean"), col("prior prec"), col("post mean"), col("post prec"))
	}
	lines := []string{
		s.header.Render(fmt.Sprintf("params: %d", len(params))),
		lipgloss.JoinHorizontal(lipgloss.Top, header...),
	}

	for _, p := range params {
		cells := []string{
			s.header.Width(4).Render(strconv.Itoa(p.Index + 1)),
			s.name.Render(p.Name),
		}
		if dists {
			cells = append(cells,
				s.value.Render(formatFloat(p.PriorMean)),
				s.value.Render(formatFloat(p.PriorPrecision)),
				s.value.Render(formatFloat(p.PosteriorMean)),
				s.value.Render(formatFloat(p.PosteriorPrecision)),
			)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if p.ARD {
			row += " " + s.ard.Render("[ard]")
		}
		lines = append(lines, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEvaluations(evals []application.Evaluation, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("evaluations: %d", len(evals)))}

	for i, ev := range evals {
		head := s.name.Render(fmt.Sprintf("#%d", i+1)) + " " + s.spark.Render(sparkline(ev.Signal))
		if ev.Reset {
			head += " " + s.warning.Render("[non-finite, zeroed]")
		}
		lines = append(lines,
			head,
			s.header.Render("  params: "+joinFloats(ev.Params)),
			"  signal: "+joinFloats(ev.Signal),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderARD(steps []application.ARDStep, names []string, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("ard steps: %d", len(steps)))}

	for _, step := range steps {
		label := fmt.Sprintf("%s %d", step.Phase, step.Iteration)
		line := s.name.Render(label) + " " + s.value.Render(formatFloat(step.FreeEnergy))
		if len(names) > 0 && len(names) == len(step.PriorVariances) {
			parts := make([]string, 0, len(names))
			for i, name := range names {
				parts = append(parts, fmt.Sprintf("%s=%s", name, formatFloat(step.PriorVariances[i])))
			}
			line += "  " + s.header.Render("prior var: "+strings.Join(parts, " "))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// sparkline scales values to the eight block levels. A flat series renders
// at the lowest level.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		level := 0
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(len(sparkLevels)-1)))
		}
		b.WriteRune(sparkLevels[level])
	}

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}
