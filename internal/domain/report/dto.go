package report

import "time"

// Filter narrows report exports.
type Filter struct {
	UserID   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// HoursSummary is one intern's progress toward the rendered-hours target.
type HoursSummary struct {
	UserID             string  `json:"user_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	HoursToRender      *int    `json:"hours_to_render,omitempty"`
	TotalRenderedHours float64 `json:"total_rendered_hours"`
	RemainingHours     float64 `json:"remaining_hours"`
	Completed          bool    `json:"completed"`
}
