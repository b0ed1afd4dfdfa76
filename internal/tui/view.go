package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/srctype/internal/stats"
	"github.com/verte-zerg/srctype/internal/typing"
)

const (
	chartHeight    = 10
	chartMinWidth  = 20
	contentPadding = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	var sections []string
	switch m.session.Status() {
	case typing.StatusBeforeStart:
		sections = []string{m.renderTimes(), m.renderLines(), m.renderHelp()}
	case typing.StatusRunning:
		sections = []string{m.renderRemaining(), m.renderLines(), m.renderResult()}
	default:
		sections = []string{m.renderResult(), m.renderChart(), m.renderHelp()}
		if footer := m.renderFooter(); footer != "" {
			sections = append(sections, footer)
		}
	}
	content := strings.Join(sections, "\n\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(m.theme.bg))
}

func (m *Model) contentWidth() int {
	return m.width - contentPadding
}

func (m *Model) renderTimes() string {
	selected := m.session.SelectedTime()
	parts := make([]string, 0, len(m.session.SelectableTimes()))
	for _, d := range m.session.SelectableTimes() {
		style := m.theme.muted
		if d == selected {
			style = m.theme.highlight
		}
		parts = append(parts, style.Render(strconv.Itoa(int(d.Seconds()))))
	}
	return strings.Join(parts, m.theme.base.Render(" "))
}

func (m *Model) renderRemaining() string {
	return m.theme.remaining.Render(strconv.Itoa(int(m.session.Typing().RemainingTime().Seconds())))
}

func (m *Model) renderLines() string {
	t := m.session.Typing()
	idx := t.CurrentLineIndex()
	isError := t.IsError()
	width := m.contentWidth()
	lines := t.DisplayLines()
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		runes := buildLineRunes(line, positionOf(line, idx), isError, m.theme)
		rendered = append(rendered, wrapStyledRunes(runes, width))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) renderResult() string {
	res := m.session.Result()
	th := m.theme
	return th.muted.Render("wpm: ") +
		th.highlight.UnsetBold().Render(strconv.Itoa(res.WPM)) +
		th.muted.Render(" acc: ") +
		th.figure.Render(strconv.Itoa(res.Accuracy)+"%") +
		th.muted.Render(" key: ") +
		th.figure.Render(strconv.Itoa(res.Typed+res.Typo)) +
		th.figure.Render("/") +
		th.typo.Render(strconv.Itoa(res.Typo))
}

func (m *Model) renderChart() string {
	res := m.session.Result()
	width := m.contentWidth()
	if width < chartMinWidth {
		width = chartMinWidth
	}
	var b strings.Builder
	err := stats.PlotSeries(&b, "", []stats.Series{
		{Name: "wpm", Values: stats.Values(res.WPMPlot)},
		{Name: "acc", Values: stats.Values(res.AccPlot)},
	}, stats.ChartOptions{
		Width:      stats.PlotWidthFor(width, len(strconv.Itoa(max(res.MaxWPM, 100)))),
		Height:     chartHeight,
		YMax:       float64(res.MaxWPM),
		XMax:       m.session.ElapsedTime().Seconds(),
		ForceColor: true,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderHelp() string {
	return m.help.ShortHelpView(m.keys.ShortHelp()) + "\n" + m.theme.muted.Render(m.file)
}

// renderFooter summarises the runs finished in this process.
func (m *Model) renderFooter() string {
	last, ok := m.report.Last()
	if !ok {
		return ""
	}
	segments := []string{
		fmt.Sprintf("Last %d WPM · %d%%", last.WPM, last.Accuracy),
		fmt.Sprintf("Best %d WPM", m.report.BestWPM),
		fmt.Sprintf("Runs %d", len(m.report.Runs)),
	}
	if len(m.report.Runs) > 1 {
		wpms := make([]float64, len(m.report.Runs))
		for i, r := range m.report.Runs {
			wpms[i] = float64(r.WPM)
		}
		segments = append(segments, stats.Sparkline(wpms))
	}
	if m.file != "" {
		segments = append(segments, filepath.Base(m.file))
	}
	return m.theme.footerText.Render(strings.Join(segments, "  "))
}
