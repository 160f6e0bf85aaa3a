package tracker

import (
	"context"
	"time"

	"github.com/mlevkov/punchclock/internal/domain"
)

// Start opens a fresh session on the target category. Any previously open
// session — on another category, or a paused one on the target itself — is
// closed first exactly as Stop would close it, keeping the invariant that at
// most one session is open system-wide. Starting a category that is already
// running is a silent no-op.
func (t *Tracker) Start(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	target := t.findCategoryLocked(id)
	if target == nil {
		return ErrCategoryNotFound
	}
	if target.Running {
		return nil
	}

	now := t.clock.Now()
	if active := t.findActiveLocked(); active != nil {
		t.closeSessionLocked(active, now)
	}

	target.Running = true
	target.Paused = false
	target.AccruedSeconds = 0
	target.StartedAt = &now
	target.SessionOpenedAt = &now
	t.state.LastSelectedCategory = target.ID
	t.save(ctx)
	return nil
}

// Stop closes the open session, whether running or paused. One report
// covering the full session span is appended when the accumulated duration
// is positive. With no open session this is a silent no-op, so a second
// consecutive Stop produces nothing.
func (t *Tracker) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := t.findActiveLocked()
	if active == nil {
		return nil
	}

	t.closeSessionLocked(active, t.clock.Now())
	t.save(ctx)
	return nil
}

// Pause freezes the running session: the elapsed leg is folded into the
// accrued seconds and the clock stops advancing. The session stays open and
// no report is emitted. Valid only from a running state; otherwise a silent
// no-op.
func (t *Tracker) Pause(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	running := t.findRunningLocked()
	if running == nil || running.StartedAt == nil {
		return nil
	}

	now := t.clock.Now()
	running.AccruedSeconds += domain.ElapsedSeconds(*running.StartedAt, now)
	running.Running = false
	running.Paused = true
	running.StartedAt = nil
	t.save(ctx)
	return nil
}

// Resume reopens the clock on the paused session, preserving its accrued
// seconds. If a different category is running it is closed first, as in
// Start. Valid only from a paused state; otherwise a silent no-op.
func (t *Tracker) Resume(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var paused *domain.Category
	for _, c := range t.state.Categories {
		if c.Paused {
			paused = c
			break
		}
	}
	if paused == nil {
		return nil
	}

	now := t.clock.Now()
	if running := t.findRunningLocked(); running != nil && running.ID != paused.ID {
		t.closeSessionLocked(running, now)
	}

	paused.Running = true
	paused.Paused = false
	paused.StartedAt = &now
	t.state.LastSelectedCategory = paused.ID
	t.save(ctx)
	return nil
}

// Select records the category as the last selected one, with no timer side
// effects.
func (t *Tracker) Select(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.findCategoryLocked(id) == nil {
		return ErrCategoryNotFound
	}
	t.state.LastSelectedCategory = id
	t.save(ctx)
	return nil
}

// SyncTime folds the live leg of the running session into its accrued
// seconds and rebases the edge timestamp, then saves. This is the periodic
// durability flush: displayed counters are derived from Elapsed and never
// write back, so this is the only sanctioned way to checkpoint a running
// session between transitions.
func (t *Tracker) SyncTime(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	running := t.findRunningLocked()
	if running == nil || running.StartedAt == nil {
		return nil
	}

	now := t.clock.Now()
	running.AccruedSeconds += domain.ElapsedSeconds(*running.StartedAt, now)
	running.StartedAt = &now
	t.save(ctx)
	return nil
}

// closeSessionLocked ends the open session on c at the given instant.
// A running leg is folded into the accrued total first; a report covering
// the full session span — including paused stretches — is appended only when
// the total is positive. The category then returns to idle with its accrued
// seconds flushed.
func (t *Tracker) closeSessionLocked(c *domain.Category, now time.Time) {
	if c.Running && c.StartedAt != nil {
		c.AccruedSeconds += domain.ElapsedSeconds(*c.StartedAt, now)
	}

	if c.AccruedSeconds > 0 {
		opened := now
		if c.SessionOpenedAt != nil {
			opened = *c.SessionOpenedAt
		} else if c.StartedAt != nil {
			opened = *c.StartedAt
		}
		t.appendReportLocked(&domain.Report{
			ID:           t.ids.New(),
			CategoryID:   c.ID,
			CategoryName: c.Name,
			StartedAt:    opened,
			EndedAt:      now,
			Duration:     c.AccruedSeconds,
			HourlyRate:   c.HourlyRate,
		})
	}

	c.Running = false
	c.Paused = false
	c.StartedAt = nil
	c.SessionOpenedAt = nil
	c.AccruedSeconds = 0
}
