package tracker

import (
	"context"

	"github.com/mlevkov/punchclock/internal/domain"
)

// appendReportLocked inserts a report at the head of the ledger, keeping the
// most-recent-first order display consumers rely on. Aggregation is order
// independent.
func (t *Tracker) appendReportLocked(r *domain.Report) {
	t.state.Reports = append([]*domain.Report{r}, t.state.Reports...)
}

// DeleteReport removes one report by its id. Ids are stable, so deletion is
// safe regardless of how the display layer currently filters or sorts.
func (t *Tracker) DeleteReport(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, r := range t.state.Reports {
		if r.ID == id {
			t.state.Reports = append(t.state.Reports[:i], t.state.Reports[i+1:]...)
			t.save(ctx)
			return nil
		}
	}
	return ErrReportNotFound
}

// deleteReportsForCategoryLocked is the cascade used by category deletion.
func (t *Tracker) deleteReportsForCategoryLocked(categoryID string) {
	kept := t.state.Reports[:0]
	for _, r := range t.state.Reports {
		if r.CategoryID != categoryID {
			kept = append(kept, r)
		}
	}
	t.state.Reports = kept
}
