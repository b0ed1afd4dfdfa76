package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

// ChartOptions sizes and scales a chart. Zero values pick defaults.
type ChartOptions struct {
	Width  int
	Height int
	// YMax is the shared upper bound of the y axis. Derived from the data when <= 0.
	YMax float64
	// XMax labels the right end of the x axis. The x axis is omitted when <= 0.
	XMax       float64
	ForceColor bool
}

type lineStyle struct {
	name   string
	period int
	on     int
}

type ansiColor struct {
	name string
	code string
}

const (
	defaultPlotHeight   = 10
	minPlotWidth        = 10
	axisSeparator       = " │ "
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

var lineStyles = []lineStyle{
	{name: "solid", period: 1, on: 1},
	{name: "dotted", period: 4, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dashdot", period: 8, on: 3},
}

var colorPalette = []ansiColor{
	{name: "yellow", code: "\x1b[33m"},
	{name: "gray", code: "\x1b[90m"},
	{name: "cyan", code: "\x1b[36m"},
	{name: "green", code: "\x1b[32m"},
}

// PlotSeries renders the series on a shared y axis from 0 to opts.YMax.
func PlotSeries(w io.Writer, title string, series []Series, opts ChartOptions) error {
	series = filterSeries(series)
	if len(series) == 0 {
		return nil
	}

	height := opts.Height
	if height <= 0 {
		height = defaultPlotHeight
	}
	yMax := opts.YMax
	if yMax <= 0 {
		yMax = seriesMax(series)
	}
	if yMax <= 0 {
		yMax = 1
	}
	axisLabels := makeAxisLabels(height, yMax)
	labelWidth := axisLabelWidth(axisLabels)

	width := opts.Width
	if width <= 0 {
		width = PlotWidthFor(terminalWidth(), labelWidth)
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	seriesCells := make([][][]uint8, 0, len(series))
	for si, s := range series {
		cells := makeCells(height, width)
		values := resampleSeries(s.Values, width)
		style := lineStyles[si%len(lineStyles)]
		prevX, prevY := -1, -1
		for x, v := range values {
			px := x * 2
			py := valueToRow(v, yMax, height*4)
			if prevX >= 0 {
				drawLine(prevX, prevY, px, py, func(dx, dy int) {
					if style.shouldPlot(dx) {
						setBrailleDot(cells, dx, dy)
					}
				})
			} else if style.shouldPlot(px) {
				setBrailleDot(cells, px, py)
			}
			prevX, prevY = px, py
		}
		seriesCells = append(seriesCells, cells)
	}

	useColor := shouldUseColor(w, opts.ForceColor)

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%*s%s", labelWidth, axisLabels[y], axisSeparator))
		for x := 0; x < width; x++ {
			mask, colorIdx := composeCell(seriesCells, x, y)
			ch := brailleFromMask(mask)
			if useColor && colorIdx >= 0 {
				row.WriteString(colorPalette[colorIdx%len(colorPalette)].code)
				row.WriteRune(ch)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	if opts.XMax > 0 {
		if _, err := fmt.Fprintln(w, xAxis(labelWidth, width, opts.XMax)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, renderLegend(series, useColor)); err != nil {
		return err
	}
	return nil
}

func filterSeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func seriesMax(series []Series) float64 {
	maxVal := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// PlotWidthFor computes a plot width that fits within the total available
// width next to a y axis of labelWidth columns.
func PlotWidthFor(totalWidth, labelWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	plotWidth := totalWidth - labelWidth - utf8.RuneCountInString(axisSeparator)
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}
	return plotWidth
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(math.Floor(v), 'f', -1, 64)
}

func makeAxisLabels(height int, yMax float64) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = formatLabel(yMax)
	if height > 2 {
		labels[height/2] = formatLabel(yMax / 2)
	}
	if height > 1 {
		labels[height-1] = "0"
	}
	return labels
}

func axisLabelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	return width
}

func xAxis(labelWidth, width int, xMax float64) string {
	left := "0"
	mid := formatLabel(xMax / 2)
	right := formatLabel(xMax)
	line := []rune(strings.Repeat(" ", width))
	place := func(pos int, s string) {
		for i, r := range s {
			if pos+i >= 0 && pos+i < len(line) {
				line[pos+i] = r
			}
		}
	}
	place(0, left)
	place(width/2-len(mid)/2, mid)
	place(width-len(right), right)
	return strings.Repeat(" ", labelWidth+utf8.RuneCountInString(axisSeparator)) + string(line)
}

func makeCells(height, width int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]uint8, width)
	}
	return cells
}

func composeCell(seriesCells [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	colorIdx := -1
	for i, cells := range seriesCells {
		if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
			continue
		}
		cellMask := cells[y][x]
		if cellMask == 0 {
			continue
		}
		if colorIdx == -1 {
			colorIdx = i
		}
		mask |= cellMask
	}
	return mask, colorIdx
}

func (ls lineStyle) shouldPlot(x int) bool {
	if ls.period <= 1 {
		return true
	}
	if x < 0 {
		x = -x
	}
	return x%ls.period < ls.on
}

// resampleSeries stretches or averages values onto width columns.
func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}

// valueToRow maps v in [0, yMax] to a dot row, clipping values above the axis.
func valueToRow(v, yMax float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := v / yMax
	row := int(math.Round((1 - pos) * float64(rows-1)))
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}

func renderLegend(series []Series, useColor bool) string {
	parts := make([]string, 0, len(series))
	marker := brailleFromMask(0x01)
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", marker, s.Name, lineStyles[i%len(lineStyles)].name)
		if useColor {
			label = colorPalette[i%len(colorPalette)].code + label + colorReset
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func setBrailleDot(cells [][]uint8, x, y int) {
	if y < 0 || x < 0 {
		return
	}
	cellY := y / 4
	cellX := x / 2
	if cellY >= len(cells) || cellX >= len(cells[cellY]) {
		return
	}
	cells[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}
