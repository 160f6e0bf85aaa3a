package cli

import (
	"fmt"
	"strings"

	"github.com/mlevkov/punchclock/internal/domain"
)

// resolveCategory maps a user-supplied reference to a category: exact id
// first, then unique case-insensitive name match, then unique id prefix.
func resolveCategory(app *App, ref string) (domain.Category, error) {
	categories := app.Tracker.Categories()

	for _, c := range categories {
		if c.ID == ref {
			return c, nil
		}
	}

	var matches []domain.Category
	for _, c := range categories {
		if strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return domain.Category{}, fmt.Errorf("category name %q is ambiguous, use the id", ref)
	}

	for _, c := range categories {
		if strings.HasPrefix(c.ID, ref) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return domain.Category{}, fmt.Errorf("category id prefix %q is ambiguous", ref)
	}

	return domain.Category{}, fmt.Errorf("no category matches %q", ref)
}

// resolveReport maps a user-supplied reference to a ledger report: exact id
// first, then unique id prefix, so the truncated ids shown by listings work.
func resolveReport(app *App, ref string) (domain.Report, error) {
	reports := app.Tracker.Reports()

	for _, r := range reports {
		if r.ID == ref {
			return r, nil
		}
	}

	var matches []domain.Report
	for _, r := range reports {
		if strings.HasPrefix(r.ID, ref) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return domain.Report{}, fmt.Errorf("report id prefix %q is ambiguous", ref)
	}

	return domain.Report{}, fmt.Errorf("no report matches %q", ref)
}
