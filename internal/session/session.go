// Package session couples a typing run with time selection and progress
// sampling. It is the layer the terminal driver talks to.
package session

import (
	"slices"
	"time"

	"github.com/verte-zerg/srctype/internal/source"
	"github.com/verte-zerg/srctype/internal/stats"
	"github.com/verte-zerg/srctype/internal/typing"
)

var presetTimes = []int{15, 30, 60, 120}

// Session is a value; every method returns a new Session.
type Session struct {
	selected time.Duration
	custom   time.Duration
	typing   typing.Typing
	progress stats.Progress
}

// Result is the figure set shown while and after a run.
type Result struct {
	WPM      int
	Accuracy int
	Typed    int
	Typo     int
	MaxWPM   int
	WPMPlot  []stats.Point
	AccPlot  []stats.Point
}

// New normalises text and builds a session limited to d. d also becomes the
// custom selectable time.
func New(text string, d time.Duration, displayLines int, opts ...typing.Option) (Session, error) {
	t, err := typing.New(source.Normalize(text), d, displayLines, opts...)
	if err != nil {
		return Session{}, err
	}
	return Session{selected: d, custom: d, typing: t}, nil
}

// Typing returns the underlying run.
func (s Session) Typing() typing.Typing {
	return s.typing
}

// Status is shorthand for Typing().Status().
func (s Session) Status() typing.Status {
	return s.typing.Status()
}

// SelectedTime returns the limit the next run starts with.
func (s Session) SelectedTime() time.Duration {
	return s.selected
}

// CustomTime returns the limit the session was created with.
func (s Session) CustomTime() time.Duration {
	return s.custom
}

// Start seeds the remaining time from the selected time and starts the run.
// It only acts before the run has started.
func (s Session) Start() Session {
	if s.typing.Status() != typing.StatusBeforeStart {
		return s
	}
	s.typing = s.typing.WithRemainingTime(s.selected).Start()
	return s
}

// Input forwards a keystroke.
func (s Session) Input(r rune) Session {
	s.typing = s.typing.Input(r)
	return s
}

// Finish ends a running run.
func (s Session) Finish() Session {
	s.typing = s.typing.Finish()
	return s
}

// Restart replaces a finished run with a fresh one over text using the
// selected time. Progress is cleared. Other states are left as they are.
func (s Session) Restart(text string) (Session, error) {
	if s.typing.Status() != typing.StatusFinish {
		return s, nil
	}
	t, err := s.typing.Restart(source.Normalize(text), s.selected)
	if err != nil {
		return s, err
	}
	s.typing = t
	s.progress = stats.Progress{}
	return s, nil
}

// Tick advances the run clock by one second and samples progress when the run
// was in progress.
func (s Session) Tick() Session {
	wasRunning := s.typing.Status() == typing.StatusRunning
	s.typing = s.typing.Tick()
	if wasRunning {
		s.progress = s.progress.Sample(s.typing)
	}
	return s
}

// SelectableTimes returns the presets plus the custom time, sorted and unique.
func (s Session) SelectableTimes() []time.Duration {
	times := make([]time.Duration, 0, len(presetTimes)+1)
	for _, sec := range presetTimes {
		times = append(times, time.Duration(sec)*time.Second)
	}
	times = append(times, s.custom)
	slices.Sort(times)
	return slices.Compact(times)
}

// NextTime selects the following selectable time, wrapping around.
func (s Session) NextTime() Session {
	return s.stepTime(1)
}

// PrevTime selects the preceding selectable time, wrapping around.
func (s Session) PrevTime() Session {
	return s.stepTime(-1)
}

// stepTime moves through SelectableTimes by delta. A selection missing from
// the table counts as the custom time.
func (s Session) stepTime(delta int) Session {
	times := s.SelectableTimes()
	idx := slices.Index(times, s.selected)
	if idx < 0 {
		idx = slices.Index(times, s.custom)
	}
	idx = (idx + delta + len(times)) % len(times)
	s.selected = times[idx]
	return s
}

// ElapsedTime is the selected time minus the remaining time.
func (s Session) ElapsedTime() time.Duration {
	return s.selected - s.typing.RemainingTime()
}

// Result collects the current figures and the sampled series.
func (s Session) Result() Result {
	return Result{
		WPM:      s.typing.WPM(),
		Accuracy: s.typing.Accuracy(),
		Typed:    s.typing.Typed(),
		Typo:     s.typing.Typo(),
		MaxWPM:   s.progress.MaxWPM(),
		WPMPlot:  s.progress.WPMPoints(),
		AccPlot:  s.progress.AccPoints(),
	}
}
