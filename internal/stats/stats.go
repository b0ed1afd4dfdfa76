package stats

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the runs of this process.
func RenderSummary(w io.Writer, report Report) error {
	if len(report.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs finished.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Runs: %d\n", len(report.Runs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", report.AvgWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", report.BestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", report.AvgAccuracy); err != nil {
		return err
	}
	if len(report.Runs) > 1 {
		wpms := make([]float64, len(report.Runs))
		for i, r := range report.Runs {
			wpms[i] = float64(r.WPM)
		}
		if _, err := fmt.Fprintf(w, "WPM trend: [%s]\n", Sparkline(wpms)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	cols := []column{
		{title: "#", right: true},
		{title: "File"},
		{title: "Time", right: true},
		{title: "WPM", right: true},
		{title: "Acc", right: true},
		{title: "Keys", right: true},
		{title: "Typos", right: true},
	}
	rows := make([][]string, 0, len(report.Runs))
	for i, r := range report.Runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			filepath.Base(r.File),
			fmt.Sprintf("%ds", int(r.TimeLimit.Seconds())),
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%d", r.Keys()),
			fmt.Sprintf("%d", r.Typo),
		})
	}
	return writeTable(w, cols, rows)
}
