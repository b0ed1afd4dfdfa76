// Package typing implements the per-line cursor model and the run state machine.
package typing

import (
	"strings"
	"unicode"
)

// Line tracks typing progress through one line of source text.
type Line struct {
	lineNo    int
	headSpace string
	entered   string
	current   rune
	hasCur    bool
	rest      string
	hasRest   bool
}

// NewLine splits raw into leading whitespace, the next expected rune and the
// untyped remainder. Whitespace-only lines become blank lines.
func NewLine(lineNo int, raw string) Line {
	text := strings.TrimLeftFunc(raw, unicode.IsSpace)
	head := raw[:len(raw)-len(text)]

	runes := []rune(text)
	switch len(runes) {
	case 0:
		return Line{lineNo: lineNo}
	case 1:
		return Line{lineNo: lineNo, headSpace: head, current: runes[0], hasCur: true}
	default:
		return Line{
			lineNo:    lineNo,
			headSpace: head,
			current:   runes[0],
			hasCur:    true,
			rest:      string(runes[1:]),
			hasRest:   true,
		}
	}
}

// LineNo returns the 1-based position of the line in the document.
func (l Line) LineNo() int {
	return l.lineNo
}

// HeadSpace returns the leading whitespace that is never typed.
func (l Line) HeadSpace() string {
	return l.headSpace
}

// Input reports whether r matches the expected rune. A line with nothing left
// to type accepts any rune.
func (l Line) Input(r rune) bool {
	if !l.hasCur {
		return true
	}
	return l.current == r
}

// Next advances the cursor by one rune.
func (l Line) Next() Line {
	if !l.hasRest {
		return l
	}
	next := l
	if l.hasCur {
		next.entered = l.entered + string(l.current)
	}
	runes := []rune(l.rest)
	if len(runes) == 0 {
		next.current = 0
		next.hasCur = false
		next.rest = ""
		next.hasRest = false
		return next
	}
	next.current = runes[0]
	next.hasCur = true
	next.rest = string(runes[1:])
	return next
}

// IsEntered reports whether no runes are queued after the current one.
func (l Line) IsEntered() bool {
	return !l.hasRest
}

// EnteredText returns the head space followed by the typed runes.
func (l Line) EnteredText() string {
	return l.headSpace + l.entered
}

// CurrentText returns the next expected rune, if any.
func (l Line) CurrentText() (rune, bool) {
	return l.current, l.hasCur
}

// RestText returns the untyped suffix after the current rune, if any.
func (l Line) RestText() (string, bool) {
	return l.rest, l.hasRest
}

// Typeable returns the number of runes that have to be typed to enter the line.
func (l Line) Typeable() int {
	n := len([]rune(l.entered)) + len([]rune(l.rest))
	if l.hasCur {
		n++
	}
	return n
}

