// Package model defines shared data structures.
package model

import "time"

// Config defines typing run settings.
type Config struct {
	Time      time.Duration
	Lines     int
	File      string
	Dir       string
	Extension string
	Theme     string
	Debug     bool
}

// RunStats captures a completed typing run.
type RunStats struct {
	ID        int64
	StartedAt time.Time
	EndedAt   time.Time
	File      string
	TimeLimit time.Duration
	Typed     int
	Typo      int
	WPM       int
	Accuracy  int
}

// Keys returns the number of keystrokes of the run.
func (r RunStats) Keys() int {
	return r.Typed + r.Typo
}
