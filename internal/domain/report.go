package domain

import "time"

// Report is an immutable record of one completed session: its time span,
// duration and the category's rate at session-close time. The category name
// and rate are snapshots so that renaming or re-pricing a category never
// rewrites history.
type Report struct {
	ID           string
	CategoryID   string
	CategoryName string
	StartedAt    time.Time
	EndedAt      time.Time
	Duration     int64 // whole seconds, source of truth for all aggregation
	HourlyRate   float64
}

// Earned returns the amount earned by this report using its own snapshotted
// rate.
func (r *Report) Earned() float64 {
	return float64(r.Duration) / 3600 * r.HourlyRate
}
