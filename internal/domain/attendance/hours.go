package attendance

import (
	"math"
	"time"
)

// HoursResult is the outcome of closing an attendance record.
type HoursResult struct {
	// Rendered is the credited hours for the day, overtime included.
	Rendered float64
	// Overtime is the portion of Rendered beyond the session maximum.
	// Informational only; it is never accumulated separately.
	Overtime float64
}

// ComputeHours derives the rendered hours for a completed session.
// A one-hour break is deducted when the raw span exceeds four hours,
// then both figures are rounded to two decimals.
func ComputeHours(timeIn, timeOut time.Time, w Window) HoursResult {
	worked := timeOut.Sub(timeIn).Hours()
	adjusted := worked
	if worked > 4 {
		adjusted -= w.BreakHours
	}
	if adjusted < 0 {
		adjusted = 0
	}
	return HoursResult{
		Rendered: round2(adjusted),
		Overtime: round2(math.Max(0, adjusted-w.MaxHours)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
