package tracker

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/mlevkov/punchclock/internal/domain"
)

// The snapshot wire format is camelCase keys with epoch-millisecond
// timestamps, kept stable so blobs written by earlier versions load
// unchanged. Fields that older snapshots lack (hourlyRate) decode to their
// zero value, which is the documented migration default.

type categorySnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Time         int64   `json:"time"`
	Running      bool    `json:"running"`
	Paused       bool    `json:"paused"`
	StartTime    *int64  `json:"startTime"`
	SessionStart *int64  `json:"sessionStart,omitempty"`
	HourlyRate   float64 `json:"hourlyRate"`
}

type reportSnapshot struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	StartTime    int64   `json:"startTime"`
	EndTime      int64   `json:"endTime"`
	Duration     int64   `json:"duration"`
	HourlyRate   float64 `json:"hourlyRate"`
}

type stateSnapshot struct {
	Categories           []categorySnapshot `json:"categories"`
	LastSelectedCategory *string            `json:"lastSelectedCategory"`
	Reports              []reportSnapshot   `json:"reports"`
}

func encodeState(s State) ([]byte, error) {
	snap := stateSnapshot{
		Categories: make([]categorySnapshot, 0, len(s.Categories)),
		Reports:    make([]reportSnapshot, 0, len(s.Reports)),
	}
	if s.LastSelectedCategory != "" {
		id := s.LastSelectedCategory
		snap.LastSelectedCategory = &id
	}

	for _, c := range s.Categories {
		snap.Categories = append(snap.Categories, categorySnapshot{
			ID:           c.ID,
			Name:         c.Name,
			Time:         c.AccruedSeconds,
			Running:      c.Running,
			Paused:       c.Paused,
			StartTime:    timeToMillis(c.StartedAt),
			SessionStart: timeToMillis(c.SessionOpenedAt),
			HourlyRate:   c.HourlyRate,
		})
	}
	for _, r := range s.Reports {
		snap.Reports = append(snap.Reports, reportSnapshot{
			ID:           r.ID,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			StartTime:    r.StartedAt.UnixMilli(),
			EndTime:      r.EndedAt.UnixMilli(),
			Duration:     r.Duration,
			HourlyRate:   r.HourlyRate,
		})
	}

	payload, err := sonic.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshaling state snapshot: %w", err)
	}
	return payload, nil
}

// decodeState parses a persisted snapshot. Timer flags are always forced
// back to idle: a running timer never survives a reload. The checkpoint
// fields (accrued seconds, session open instant, last rebased edge) are kept
// so Load can flush an interrupted session into a recovery report.
func decodeState(payload []byte) (State, error) {
	var snap stateSnapshot
	if err := sonic.Unmarshal(payload, &snap); err != nil {
		return State{}, fmt.Errorf("unmarshaling state snapshot: %w", err)
	}

	s := State{}
	if snap.LastSelectedCategory != nil {
		s.LastSelectedCategory = *snap.LastSelectedCategory
	}

	for _, c := range snap.Categories {
		s.Categories = append(s.Categories, &domain.Category{
			ID:              c.ID,
			Name:            c.Name,
			HourlyRate:      c.HourlyRate,
			AccruedSeconds:  c.Time,
			Running:         false,
			Paused:          false,
			StartedAt:       millisToTime(c.StartTime),
			SessionOpenedAt: millisToTime(c.SessionStart),
		})
	}
	for _, r := range snap.Reports {
		s.Reports = append(s.Reports, &domain.Report{
			ID:           r.ID,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			StartedAt:    time.UnixMilli(r.StartTime),
			EndedAt:      time.UnixMilli(r.EndTime),
			Duration:     r.Duration,
			HourlyRate:   r.HourlyRate,
		})
	}
	return s, nil
}

func timeToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func millisToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
