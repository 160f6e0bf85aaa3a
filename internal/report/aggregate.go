// Package report derives calendar-window statistics from the report ledger.
// Everything here is a pure function of its inputs; nothing is persisted.
package report

import (
	"math"
	"time"

	"github.com/mlevkov/punchclock/internal/domain"
)

// AllCategories selects reports from every category.
const AllCategories = "all"

// Filter narrows which reports contribute to the statistics: one category
// (or AllCategories) and one calendar month.
type Filter struct {
	CategoryID string
	Year       int
	Month      time.Month
}

// Matching returns the reports the filter selects: the category match plus
// the month window, inclusive from the month's first instant through its
// last millisecond. Aggregate and the listing views share this selection so
// they cannot drift apart.
func (f Filter) Matching(reports []domain.Report, loc *time.Location) []domain.Report {
	monthStart := time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)

	var out []domain.Report
	for _, r := range reports {
		if f.CategoryID != AllCategories && r.CategoryID != f.CategoryID {
			continue
		}
		if r.StartedAt.Before(monthStart) || r.StartedAt.After(monthEnd) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Stats is the aggregated view of the filtered reports. Times are whole
// seconds; earned amounts are computed per report with that report's own
// snapshotted rate and then summed, never from a current rate.
type Stats struct {
	TotalTime   int64
	TotalEarned float64

	WeekTime   int64
	WeekEarned float64

	MonthTime   int64
	MonthEarned float64

	YearTime   int64
	YearEarned float64

	AvgDay       int64
	AvgDayEarned float64

	MaxDay       int64
	MaxDayEarned float64

	MinDay       int64
	MinDayEarned float64

	Forecast       int64
	ForecastEarned float64
}

// Aggregate computes statistics over the ledger for the given filter.
// The month window is inclusive on both ends and spans the first instant of
// the month through its last millisecond; the week window starts on the
// Monday of the week containing now; the year window starts on January 1st
// of the selected year. Empty inputs degrade to all-zero stats.
func Aggregate(reports []domain.Report, f Filter, now time.Time) Stats {
	loc := now.Location()
	filtered := f.Matching(reports, loc)

	var s Stats
	weekStart := startOfWeek(now)
	yearStart := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, loc)

	days := make(map[string]*dayBucket)
	for _, r := range filtered {
		earned := r.Earned()

		s.TotalTime += r.Duration
		s.TotalEarned += earned
		if !r.StartedAt.Before(weekStart) {
			s.WeekTime += r.Duration
			s.WeekEarned += earned
		}
		if !r.StartedAt.Before(yearStart) {
			s.YearTime += r.Duration
			s.YearEarned += earned
		}

		key := r.StartedAt.In(loc).Format("2006-01-02")
		b := days[key]
		if b == nil {
			b = &dayBucket{}
			days[key] = b
		}
		b.duration += r.Duration
		b.earned += earned
	}

	// The filtered set is already restricted to the selected month.
	s.MonthTime = s.TotalTime
	s.MonthEarned = s.TotalEarned

	if len(days) > 0 {
		var sumDur int64
		var sumEarned float64
		first := true
		for _, b := range days {
			sumDur += b.duration
			sumEarned += b.earned
			if first {
				s.MaxDay, s.MinDay = b.duration, b.duration
				s.MaxDayEarned, s.MinDayEarned = b.earned, b.earned
				first = false
				continue
			}
			s.MaxDay = max(s.MaxDay, b.duration)
			s.MinDay = min(s.MinDay, b.duration)
			s.MaxDayEarned = math.Max(s.MaxDayEarned, b.earned)
			s.MinDayEarned = math.Min(s.MinDayEarned, b.earned)
		}
		s.AvgDay = int64(math.Round(float64(sumDur) / float64(len(days))))
		s.AvgDayEarned = sumEarned / float64(len(days))
	}

	// Naive forecast: tomorrow looks like the average day.
	s.Forecast = s.AvgDay
	s.ForecastEarned = s.AvgDayEarned

	return s
}

type dayBucket struct {
	duration int64
	earned   float64
}

// startOfWeek returns midnight of the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
