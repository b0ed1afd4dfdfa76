package stats

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Test Plot", []Series{
		{Name: "wpm", Values: []float64{0, 30, 60, 45, 50}},
		{Name: "acc", Values: []float64{100, 90, 95, 97, 98}},
	}, ChartOptions{Width: 20, Height: 4, YMax: 100, XMax: 5})
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "wpm (solid)") || !strings.Contains(out, "acc (dotted)") {
		t.Fatalf("expected legend in output: %s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+4+1+1 {
		t.Fatalf("expected 7 lines of output, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "100 │ ") {
		t.Fatalf("unexpected top axis line %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], "  0 │ ") {
		t.Fatalf("unexpected bottom axis line %q", lines[4])
	}
	if !strings.HasSuffix(lines[5], "5") {
		t.Fatalf("expected x axis to end with elapsed seconds: %q", lines[5])
	}
}

func TestPlotSeriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotSeries(&buf, "Empty", []Series{{Name: "wpm"}}, ChartOptions{}); err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series")
	}
}

func TestPlotWidthFor(t *testing.T) {
	axisWidth := 3 + utf8.RuneCountInString(axisSeparator)
	if got := PlotWidthFor(80, 3); got != 80-axisWidth {
		t.Fatalf("expected width %d, got %d", 80-axisWidth, got)
	}
	if got := PlotWidthFor(0, 3); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}

func TestValueToRowClips(t *testing.T) {
	if row := valueToRow(150, 100, 40); row != 0 {
		t.Fatalf("expected values above the axis to clip to the top row, got %d", row)
	}
	if row := valueToRow(0, 100, 40); row != 39 {
		t.Fatalf("expected zero on the bottom row, got %d", row)
	}
}
