package attendance

import (
	"time"
)

// SessionKind selects which daily work window an intern clocks into.
type SessionKind string

const (
	SessionMorning   SessionKind = "morning"
	SessionAfternoon SessionKind = "afternoon"
	SessionWhole     SessionKind = "whole"
)

// ClockTime is a wall-clock time of day, independent of date.
type ClockTime struct {
	Hour   int
	Minute int
}

// At anchors the clock time onto the given date, in that date's location.
func (c ClockTime) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// Window describes the fixed schedule of a session kind.
type Window struct {
	Kind          SessionKind
	Start         ClockTime
	End           ClockTime
	LateThreshold ClockTime
	MaxHours      float64
	BreakHours    float64
}

// EndOfDay is the close of the whole working day; the absence sweep only
// marks absentees after this time has passed.
var EndOfDay = ClockTime{Hour: 17, Minute: 0}

// earlyTimeoutLeeway is how long before the session end a clock-out is
// still considered on time.
const earlyTimeoutLeeway = 30 * time.Minute

var windows = map[SessionKind]Window{
	SessionMorning: {
		Kind:          SessionMorning,
		Start:         ClockTime{8, 0},
		End:           ClockTime{12, 0},
		LateThreshold: ClockTime{8, 1},
		MaxHours:      4,
		BreakHours:    1,
	},
	SessionAfternoon: {
		Kind:          SessionAfternoon,
		Start:         ClockTime{13, 0},
		End:           ClockTime{17, 0},
		LateThreshold: ClockTime{13, 1},
		MaxHours:      4,
		BreakHours:    1,
	},
	SessionWhole: {
		Kind:          SessionWhole,
		Start:         ClockTime{8, 0},
		End:           ClockTime{17, 0},
		LateThreshold: ClockTime{8, 1},
		MaxHours:      8,
		BreakHours:    1,
	},
}

// ResolveWindow returns the schedule for a session kind.
func ResolveWindow(kind SessionKind) (Window, error) {
	w, ok := windows[kind]
	if !ok {
		return Window{}, ErrInvalidSessionKind
	}
	return w, nil
}

// Contains reports whether t falls inside [start, end) on t's date.
func (w Window) Contains(t time.Time) bool {
	start := w.Start.At(t)
	end := w.End.At(t)
	return !t.Before(start) && t.Before(end)
}

// LateFor returns the whole minutes t is past the late threshold,
// zero when on time.
func (w Window) LateFor(t time.Time) int {
	threshold := w.LateThreshold.At(t)
	if !t.After(threshold) {
		return 0
	}
	return int(t.Sub(threshold).Minutes())
}

// EarlyTimeout reports whether a clock-out at t leaves more than the
// allowed leeway before the session end.
func (w Window) EarlyTimeout(t time.Time) bool {
	end := w.End.At(t)
	return end.Sub(t) > earlyTimeoutLeeway
}
