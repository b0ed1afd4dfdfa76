package typing

import (
	"errors"
	"time"
)

// ErrEmptyText is returned when a run is built from empty text.
var ErrEmptyText = errors.New("text is empty")

// Status tags the variant of a Typing value.
type Status int

const (
	StatusBeforeStart Status = iota
	StatusRunning
	StatusFinish
)

func (s Status) String() string {
	switch s {
	case StatusBeforeStart:
		return "before-start"
	case StatusRunning:
		return "running"
	case StatusFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Typing is the run state machine. It is implemented by BeforeStart, Running
// and Finish only. Every transition returns a new value and leaves the
// receiver untouched.
type Typing interface {
	Status() Status
	Snapshot() State

	Start() Typing
	Input(r rune) Typing
	Next() Typing
	Tick() Typing
	Finish() Typing
	Restart(text string, remaining time.Duration) (Typing, error)
	WithRemainingTime(d time.Duration) Typing

	Lines() []Line
	Current() Line
	CurrentLineIndex() int
	DisplayLines() []Line
	Typed() int
	Typo() int
	IsError() bool
	RemainingTime() time.Duration
	RunningTime() time.Duration
	WPM() int
	Accuracy() int
	Total() int

	sealed()
}

// Option configures a new Typing value.
type Option func(*State)

// WithClock sets the wall clock used for start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a run in BeforeStart from newline separated text.
func New(text string, remaining time.Duration, displayLines int, opts ...Option) (Typing, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	s := newState(text, remaining, displayLines)
	for _, opt := range opts {
		opt(&s)
	}
	return BeforeStart{s}, nil
}

// BeforeStart is a run that has not received its first keystroke.
type BeforeStart struct {
	State
}

// Running is a run in progress.
type Running struct {
	State
}

// Finish is a completed run.
type Finish struct {
	State
}

func (BeforeStart) sealed() {}
func (Running) sealed()     {}
func (Finish) sealed()      {}

func (BeforeStart) Status() Status { return StatusBeforeStart }
func (Running) Status() Status     { return StatusRunning }
func (Finish) Status() Status      { return StatusFinish }

func (t BeforeStart) Snapshot() State { return t.State }
func (t Running) Snapshot() State     { return t.State }
func (t Finish) Snapshot() State      { return t.State }

// Start records the start time and begins the run.
func (t BeforeStart) Start() Typing {
	s := t.State
	s.startTime = s.now()
	return Running{s}
}

func (t BeforeStart) Input(rune) Typing { return t }
func (t BeforeStart) Next() Typing      { return t }
func (t BeforeStart) Tick() Typing      { return t }
func (t BeforeStart) Finish() Typing    { return t }

// Restart is a no-op before the run has started.
func (t BeforeStart) Restart(string, time.Duration) (Typing, error) { return t, nil }

// WithRemainingTime replaces the countdown.
func (t BeforeStart) WithRemainingTime(d time.Duration) Typing {
	s := t.State
	s.remaining = d
	return BeforeStart{s}
}

// WPM is always zero before the start.
func (BeforeStart) WPM() int { return 0 }

// Accuracy is always zero before the start.
func (BeforeStart) Accuracy() int { return 0 }

// IsError is always false before the start.
func (BeforeStart) IsError() bool { return false }

func (t Running) Start() Typing { return t }

// Input matches r against the current line. A match advances the cursor and
// moves to the next line once the current one is entered; a mismatch counts
// a typo and flags the error. On a blank line any rune moves on without being
// counted.
func (t Running) Input(r rune) Typing {
	line := t.Current()
	if _, ok := line.CurrentText(); !ok {
		s := t.State
		s.isError = false
		return Running{s}.Next()
	}
	if !line.Input(r) {
		s := t.State
		s.typo++
		s.isError = true
		return Running{s}
	}
	s := t.withLine(line.Next())
	s.typed++
	s.isError = false
	if s.Current().IsEntered() {
		return Running{s}.Next()
	}
	return Running{s}
}

// Next moves to the following line, finishing the run after the last one.
func (t Running) Next() Typing {
	if t.index+1 < len(t.lines) {
		s := t.State
		s.index++
		return Running{s}
	}
	return t.Finish()
}

// Tick counts the remaining time down by one second, finishing the run when
// it runs out.
func (t Running) Tick() Typing {
	s := t.State
	if s.remaining <= tickUnit {
		s.remaining = 0
		return Running{s}.Finish()
	}
	s.remaining -= tickUnit
	return Running{s}
}

// Finish records the end time.
func (t Running) Finish() Typing {
	s := t.State
	s.endTime = s.now()
	s.isError = false
	return Finish{s}
}

// Restart is a no-op while the run is in progress.
func (t Running) Restart(string, time.Duration) (Typing, error) { return t, nil }

// WithRemainingTime replaces the countdown.
func (t Running) WithRemainingTime(d time.Duration) Typing {
	s := t.State
	s.remaining = d
	return Running{s}
}

func (t Finish) Start() Typing     { return t }
func (t Finish) Input(rune) Typing { return t }
func (t Finish) Next() Typing      { return t }
func (t Finish) Tick() Typing      { return t }
func (t Finish) Finish() Typing    { return t }

// Restart rebuilds the run from text and returns to BeforeStart. The viewport
// size and clock carry over.
func (t Finish) Restart(text string, remaining time.Duration) (Typing, error) {
	if text == "" {
		return t, ErrEmptyText
	}
	s := newState(text, remaining, t.displayLines)
	s.now = t.now
	return BeforeStart{s}, nil
}

// WithRemainingTime replaces the countdown.
func (t Finish) WithRemainingTime(d time.Duration) Typing {
	s := t.State
	s.remaining = d
	return Finish{s}
}
