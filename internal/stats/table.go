package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column describes one summary table column.
type column struct {
	title string
	right bool
}

// writeTable prints a header, a dashed rule and one line per row. Cells are
// padded to the widest display width in their column.
func writeTable(w io.Writer, cols []column, rows [][]string) error {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i := range cols {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}

	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.title
		rule[i] = strings.Repeat("-", widths[i])
	}
	lines := [][]string{header, rule}
	lines = append(lines, rows...)
	for _, cells := range lines {
		if _, err := fmt.Fprintln(w, tableLine(cols, widths, cells)); err != nil {
			return err
		}
	}
	return nil
}

func tableLine(cols []column, widths []int, cells []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if c.right {
			parts[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
