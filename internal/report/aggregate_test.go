package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mlevkov/punchclock/internal/domain"
)

func mkReport(categoryID string, start time.Time, duration int64, rate float64) domain.Report {
	return domain.Report{
		ID:           "r-" + start.Format("20060102150405"),
		CategoryID:   categoryID,
		CategoryName: categoryID,
		StartedAt:    start,
		EndedAt:      start.Add(time.Duration(duration) * time.Second),
		Duration:     duration,
		HourlyRate:   rate,
	}
}

func TestAggregate_Empty(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	s := Aggregate(nil, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)
	assert.Equal(t, Stats{}, s, "empty input degrades to all-zero stats")
}

func TestAggregate_EarnedFromSnapshottedRate(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 3661, 10),
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)

	assert.Equal(t, int64(3661), s.TotalTime)
	assert.InDelta(t, 3661.0/3600*10, s.TotalEarned, 1e-9)
	assert.Equal(t, s.TotalTime, s.MonthTime)
	assert.InDelta(t, s.TotalEarned, s.MonthEarned, 1e-9)
}

func TestAggregate_CategoryFilter(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", day, 100, 10),
		mkReport("globex", day, 200, 10),
	}
	f := Filter{CategoryID: "acme", Year: 2024, Month: time.March}

	s := Aggregate(reports, f, now)
	assert.Equal(t, int64(100), s.TotalTime)

	all := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)
	assert.Equal(t, int64(300), all.TotalTime)
}

func TestFilter_Matching(t *testing.T) {
	day := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", day, 100, 10),
		mkReport("globex", day, 200, 10),
		mkReport("acme", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 300, 10),
	}

	f := Filter{CategoryID: "acme", Year: 2024, Month: time.March}
	got := f.Matching(reports, time.UTC)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].Duration)

	all := Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}
	assert.Len(t, all.Matching(reports, time.UTC), 2)
}

func TestAggregate_MonthWindowInclusive(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		// First instant of the month.
		mkReport("acme", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 60, 10),
		// Last millisecond of the month.
		mkReport("acme", time.Date(2024, time.March, 31, 23, 59, 59, 999e6, time.UTC), 60, 10),
		// Adjacent months stay out.
		mkReport("acme", time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), 60, 10),
		mkReport("acme", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 60, 10),
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)
	assert.Equal(t, int64(120), s.TotalTime)
}

func TestAggregate_WeekStartsMonday(t *testing.T) {
	// 2024-03-20 is a Wednesday; the week window opens Monday 2024-03-18.
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC), 100, 10),
		mkReport("acme", time.Date(2024, time.March, 17, 23, 59, 0, 0, time.UTC), 200, 10), // Sunday before
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)
	assert.Equal(t, int64(100), s.WeekTime)
	assert.Equal(t, int64(300), s.TotalTime)
}

func TestAggregate_SundayBelongsToPrecedingMonday(t *testing.T) {
	// 2024-03-24 is a Sunday; its week opened Monday 2024-03-18.
	now := time.Date(2024, time.March, 24, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", time.Date(2024, time.March, 18, 8, 0, 0, 0, time.UTC), 100, 10),
		mkReport("acme", time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC), 200, 10), // previous week
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)
	assert.Equal(t, int64(100), s.WeekTime)
}

func TestAggregate_DailyBuckets(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		// Two reports on the 5th, one on the 6th.
		mkReport("acme", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 100, 10),
		mkReport("acme", time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC), 200, 10),
		mkReport("acme", time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC), 50, 20),
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)

	assert.Equal(t, int64(300), s.MaxDay)
	assert.InDelta(t, 300.0/3600*10, s.MaxDayEarned, 1e-9)
	assert.Equal(t, int64(50), s.MinDay)
	assert.InDelta(t, 50.0/3600*20, s.MinDayEarned, 1e-9)
	assert.Equal(t, int64(175), s.AvgDay, "350 over 2 active days")
	assert.Equal(t, s.AvgDay, s.Forecast)
	assert.InDelta(t, s.AvgDayEarned, s.ForecastEarned, 1e-9)
}

func TestAggregate_MinMaxComputedIndependently(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		// Longest day at a low rate, shortest day at a high rate.
		mkReport("acme", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 7200, 1),
		mkReport("acme", time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC), 600, 100),
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)

	assert.Equal(t, int64(7200), s.MaxDay)
	assert.InDelta(t, 600.0/3600*100, s.MaxDayEarned, 1e-9, "best earning day is not the longest day")
	assert.Equal(t, int64(600), s.MinDay)
	assert.InDelta(t, 7200.0/3600*1, s.MinDayEarned, 1e-9)
}

func TestAggregate_SingleDay(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		mkReport("acme", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 900, 40),
	}

	s := Aggregate(reports, Filter{CategoryID: AllCategories, Year: 2024, Month: time.March}, now)

	assert.Equal(t, int64(900), s.AvgDay)
	assert.Equal(t, int64(900), s.MaxDay)
	assert.Equal(t, int64(900), s.MinDay)
	assert.InDelta(t, 10.0, s.MaxDayEarned, 1e-9)
	assert.InDelta(t, s.MaxDayEarned, s.MinDayEarned, 1e-9)
}
