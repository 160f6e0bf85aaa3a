package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is a billable work context (an employer, a client, a project)
// with its own hourly rate and timer state.
type Category struct {
	ID         string
	Name       string
	HourlyRate float64

	// AccruedSeconds holds the whole seconds accumulated by the currently
	// open session. It is flushed into a Report and reset to zero when the
	// session closes.
	AccruedSeconds int64

	Running bool
	Paused  bool

	// StartedAt is the most recent start/resume edge, nil whenever the
	// clock is not advancing.
	StartedAt *time.Time

	// SessionOpenedAt is the instant the open session began. It survives
	// the StartedAt rebasing done by pause/resume and becomes the start of
	// the Report emitted when the session closes.
	SessionOpenedAt *time.Time
}

// Validate checks the user-editable fields at the mutation boundary.
// Invalid categories never enter persisted state.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	if c.HourlyRate < 0 {
		return fmt.Errorf("hourly rate %v must not be negative", c.HourlyRate)
	}
	return nil
}

// Active reports whether the category has an open session, running or paused.
func (c *Category) Active() bool {
	return c.Running || c.Paused
}

// Elapsed returns the total seconds accrued by the open session as of now,
// including the live leg when the clock is advancing. Purely derived; it
// never mutates the category.
func (c *Category) Elapsed(now time.Time) int64 {
	total := c.AccruedSeconds
	if c.Running && c.StartedAt != nil {
		total += ElapsedSeconds(*c.StartedAt, now)
	}
	return total
}

// ElapsedSeconds converts a wall-clock span into whole seconds. Sub-second
// remainders are truncated at each boundary and not carried forward, so many
// pause/resume cycles accumulate a small negative drift.
func ElapsedSeconds(from, to time.Time) int64 {
	if to.Before(from) {
		return 0
	}
	return to.Sub(from).Milliseconds() / 1000
}
