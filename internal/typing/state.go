package typing

import (
	"math"
	"strings"
	"time"
)

const (
	tickUnit     = time.Second
	charsPerWord = 5
)

// State is the run snapshot carried by every Typing variant.
type State struct {
	lines        []Line
	index        int
	displayLines int
	typed        int
	typo         int
	isError      bool
	remaining    time.Duration
	startTime    time.Time
	endTime      time.Time
	now          func() time.Time
}

func newState(text string, remaining time.Duration, displayLines int) State {
	return State{
		lines:        toLines(text),
		displayLines: displayLines,
		remaining:    remaining,
		now:          time.Now,
	}
}

func toLines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, v := range raw {
		lines = append(lines, NewLine(i+1, v))
	}
	return lines
}

// withLine returns a copy of s with the current line replaced.
func (s State) withLine(l Line) State {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	lines[s.index] = l
	s.lines = lines
	return s
}

// Lines returns a copy of all lines of the document.
func (s State) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Current returns the line being typed.
func (s State) Current() Line {
	return s.lines[s.index]
}

// CurrentLineIndex returns the index of the line being typed.
func (s State) CurrentLineIndex() int {
	return s.index
}

// DisplayLineCount returns the configured viewport height in lines.
func (s State) DisplayLineCount() int {
	return s.displayLines
}

// Typed returns the number of correct keystrokes.
func (s State) Typed() int {
	return s.typed
}

// Typo returns the number of incorrect keystrokes.
func (s State) Typo() int {
	return s.typo
}

// IsError reports whether the latest keystroke was a mismatch.
func (s State) IsError() bool {
	return s.isError
}

// RemainingTime returns the countdown left for the run.
func (s State) RemainingTime() time.Duration {
	return s.remaining
}

// StartTime returns when the run started.
func (s State) StartTime() (time.Time, bool) {
	return s.startTime, !s.startTime.IsZero()
}

// EndTime returns when the run finished.
func (s State) EndTime() (time.Time, bool) {
	return s.endTime, !s.endTime.IsZero()
}

// RunningTime returns the time between start and end, or start and now while
// the run is still going. Zero before the start.
func (s State) RunningTime() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	end := s.endTime
	if end.IsZero() {
		end = s.now()
	}
	if end.Before(s.startTime) {
		return 0
	}
	return end.Sub(s.startTime)
}

// WPM returns words per minute, counting every keystroke and five characters
// per word.
func (s State) WPM() int {
	if s.startTime.IsZero() {
		return 0
	}
	sec := int(s.RunningTime() / time.Second)
	if sec < 1 {
		sec = 1
	}
	return ((s.typed + s.typo) / sec) * 60 / charsPerWord
}

// Accuracy returns the rounded percentage of correct keystrokes, or 0 when
// nothing has been typed.
func (s State) Accuracy() int {
	total := s.typed + s.typo
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.typed) / float64(total) * 100))
}

// Total returns the number of runes that have to be typed for the whole document.
func (s State) Total() int {
	n := 0
	for _, l := range s.lines {
		n += l.Typeable()
	}
	return n
}

// DisplayLines returns the lines visible in the viewport. When the document
// does not fit, the window starts one line before the current one and holds
// up to the configured count, fewer near the end of the document.
func (s State) DisplayLines() []Line {
	if s.displayLines <= 0 || len(s.lines) <= s.displayLines {
		return s.Lines()
	}
	start := s.index - 1
	if start < 0 {
		start = 0
	}
	end := start + s.displayLines
	if end > len(s.lines) {
		end = len(s.lines)
	}
	out := make([]Line, end-start)
	copy(out, s.lines[start:end])
	return out
}
