package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mlevkov/punchclock/internal/domain"
	"github.com/mlevkov/punchclock/internal/repository"
)

// Namespace is the snapshot key the tracker state is persisted under.
const Namespace = "tracker"

// State is the process-wide state container: the category registry, the
// last-selected category and the report ledger, all persisted together as
// one snapshot.
type State struct {
	Categories           []*domain.Category
	LastSelectedCategory string
	Reports              []*domain.Report
}

// Tracker owns the category registry, the single-active-timer state machine
// and the report ledger. All mutating operations run synchronously under one
// lock, so no operation observes a partially applied prior transition, and
// each one ends with a snapshot save. Save failures are logged and swallowed:
// the in-memory state stays authoritative for the current session.
type Tracker struct {
	mu    sync.Mutex
	state State

	snapshots repository.SnapshotRepo
	clock     Clock
	ids       IDGenerator
	log       *slog.Logger
}

// New creates a Tracker persisting into the given snapshot store. A nil
// clock, id generator or logger falls back to the real clock, random UUIDs
// and slog.Default respectively. Call Load before use to restore persisted
// state.
func New(snapshots repository.SnapshotRepo, clock Clock, ids IDGenerator, logger *slog.Logger) *Tracker {
	if clock == nil {
		clock = RealClock{}
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		snapshots: snapshots,
		clock:     clock,
		ids:       ids,
		log:       logger,
	}
}

// Load restores the persisted snapshot. A missing snapshot yields the empty
// initial state; a malformed one is logged and also degrades to the empty
// state rather than failing startup. Any persisted running/paused flags are
// cleared: a timer never survives a reload, and time elapsed while away is
// not retroactively credited. Seconds checkpointed by a pause or a periodic
// sync before shutdown are flushed into recovery reports so they stay
// billable.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	payload, err := t.snapshots.Get(ctx, Namespace)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			t.log.Warn("could not load tracker snapshot", "error", err)
		}
		t.state = State{}
		return
	}

	state, err := decodeState(payload)
	if err != nil {
		t.log.Warn("could not decode tracker snapshot", "error", err)
		t.state = State{}
		return
	}
	t.state = state
	t.recoverCheckpointsLocked(ctx)
}

// recoverCheckpointsLocked closes any session that was open when the last
// snapshot was written. The session cannot continue across a reload, so its
// checkpointed seconds become a report here instead of being discarded by
// the next Start. The report ends at the last rebased edge when that is
// known, never at load time: time away is not credited.
func (t *Tracker) recoverCheckpointsLocked(ctx context.Context) {
	recovered := false
	for _, c := range t.state.Categories {
		if c.AccruedSeconds <= 0 {
			c.StartedAt = nil
			c.SessionOpenedAt = nil
			continue
		}

		opened := t.clock.Now()
		if c.SessionOpenedAt != nil {
			opened = *c.SessionOpenedAt
		} else if c.StartedAt != nil {
			opened = *c.StartedAt
		}
		end := opened.Add(time.Duration(c.AccruedSeconds) * time.Second)
		if c.StartedAt != nil && c.StartedAt.After(end) {
			end = *c.StartedAt
		}

		c.StartedAt = nil
		c.SessionOpenedAt = &opened
		t.closeSessionLocked(c, end)
		recovered = true
	}
	if recovered {
		t.save(ctx)
	}
}

// save persists the current state. Called at the end of every mutating
// operation, with the tracker lock held. Failures are logged as warnings and
// never surfaced: durability is at risk but the session keeps functioning.
func (t *Tracker) save(ctx context.Context) {
	payload, err := encodeState(t.state)
	if err != nil {
		t.log.Warn("could not encode tracker snapshot", "error", err)
		return
	}
	if err := t.snapshots.Put(ctx, Namespace, payload); err != nil {
		t.log.Warn("could not save tracker snapshot", "error", err)
	}
}

// Categories returns a copy of all categories in registration order.
func (t *Tracker) Categories() []domain.Category {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.Category, 0, len(t.state.Categories))
	for _, c := range t.state.Categories {
		out = append(out, *c)
	}
	return out
}

// CategoryByID returns a copy of the category with the given id.
func (t *Tracker) CategoryByID(id string) (domain.Category, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.findCategoryLocked(id)
	if c == nil {
		return domain.Category{}, ErrCategoryNotFound
	}
	return *c, nil
}

// ActiveCategory returns a copy of the category with an open session
// (running or paused), if any.
func (t *Tracker) ActiveCategory() (domain.Category, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if c := t.findActiveLocked(); c != nil {
		return *c, true
	}
	return domain.Category{}, false
}

// Now exposes the tracker's clock so display layers derive live counters
// from the same time source the transitions use.
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

// LastSelected returns the id of the last selected category, or "" when no
// selection has been made.
func (t *Tracker) LastSelected() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.LastSelectedCategory
}

// Reports returns a copy of the report ledger, most recent first.
func (t *Tracker) Reports() []domain.Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.Report, 0, len(t.state.Reports))
	for _, r := range t.state.Reports {
		out = append(out, *r)
	}
	return out
}

func (t *Tracker) findCategoryLocked(id string) *domain.Category {
	for _, c := range t.state.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (t *Tracker) findActiveLocked() *domain.Category {
	for _, c := range t.state.Categories {
		if c.Active() {
			return c
		}
	}
	return nil
}

func (t *Tracker) findRunningLocked() *domain.Category {
	for _, c := range t.state.Categories {
		if c.Running {
			return c
		}
	}
	return nil
}
