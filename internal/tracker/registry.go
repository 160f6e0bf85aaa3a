package tracker

import (
	"context"
	"strings"

	"github.com/mlevkov/punchclock/internal/domain"
)

// AddCategory validates and registers a new category. Names are trimmed;
// empty names and negative rates are rejected before anything enters
// persisted state.
func (t *Tracker) AddCategory(ctx context.Context, name string, hourlyRate float64) (domain.Category, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := &domain.Category{
		ID:         t.ids.New(),
		Name:       strings.TrimSpace(name),
		HourlyRate: hourlyRate,
	}
	if err := c.Validate(); err != nil {
		return domain.Category{}, err
	}

	t.state.Categories = append(t.state.Categories, c)
	t.save(ctx)
	return *c, nil
}

// UpdateCategory overwrites the name and rate of an existing category.
// Timer state is untouched, and past reports keep their snapshotted values.
func (t *Tracker) UpdateCategory(ctx context.Context, id, name string, hourlyRate float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.findCategoryLocked(id)
	if c == nil {
		return ErrCategoryNotFound
	}

	updated := *c
	updated.Name = strings.TrimSpace(name)
	updated.HourlyRate = hourlyRate
	if err := updated.Validate(); err != nil {
		return err
	}

	c.Name = updated.Name
	c.HourlyRate = updated.HourlyRate
	t.save(ctx)
	return nil
}

// DeleteCategory removes a category together with all of its reports. If it
// was the last selected category the selection is cleared. An open session
// on the category is discarded rather than flushed: any final report would
// be removed by the cascade in the same operation anyway.
func (t *Tracker) DeleteCategory(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := -1
	for i, c := range t.state.Categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrCategoryNotFound
	}

	t.state.Categories = append(t.state.Categories[:idx], t.state.Categories[idx+1:]...)
	t.deleteReportsForCategoryLocked(id)
	if t.state.LastSelectedCategory == id {
		t.state.LastSelectedCategory = ""
	}
	t.save(ctx)
	return nil
}
