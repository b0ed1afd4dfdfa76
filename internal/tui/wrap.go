// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/srctype/internal/typing"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

type linePosition int

const (
	linePast linePosition = iota
	lineCurrent
	lineFuture
)

func positionOf(line typing.Line, currentIndex int) linePosition {
	idx := line.LineNo() - 1
	switch {
	case idx < currentIndex:
		return linePast
	case idx == currentIndex:
		return lineCurrent
	default:
		return lineFuture
	}
}

// buildLineRunes styles the entered, current and rest segments of a line.
// Lines before the cursor render fully green, the cursor line highlights the
// expected rune, and lines after it stay muted.
func buildLineRunes(line typing.Line, pos linePosition, isError bool, theme Theme) []styledRune {
	enteredStyle := theme.entered
	currentStyle := theme.muted
	restStyle := theme.muted
	switch pos {
	case linePast:
		currentStyle = theme.entered
	case lineCurrent:
		currentStyle = theme.cursor
		if isError {
			currentStyle = theme.cursorErr
		}
		restStyle = theme.pending
	}

	entered := line.EnteredText()
	rest, _ := line.RestText()
	out := make([]styledRune, 0, len(entered)+len(rest)+1)
	out = appendStyled(out, entered, enteredStyle)
	if current, ok := line.CurrentText(); ok {
		out = appendStyled(out, string(current), currentStyle)
	}
	return appendStyled(out, rest, restStyle)
}

func appendStyled(out []styledRune, text string, style lipgloss.Style) []styledRune {
	for _, r := range text {
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
