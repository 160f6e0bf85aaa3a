// Package settings persists user preferences in their own snapshot
// namespace, separate from the tracker state.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/mlevkov/punchclock/internal/domain"
	"github.com/mlevkov/punchclock/internal/repository"
)

// Namespace is the snapshot key the settings are persisted under.
const Namespace = "settings"

type settingsSnapshot struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	HourlyRate  float64 `json:"hourlyRate"`
	Currency    string  `json:"currency"`
	Language    string  `json:"language"`
}

// Service loads and saves the settings blob. Like the tracker, it treats the
// in-memory copy as authoritative: save failures are logged, not raised.
type Service struct {
	mu        sync.Mutex
	current   domain.Settings
	snapshots repository.SnapshotRepo
	log       *slog.Logger
}

// NewService creates a settings service over the given snapshot store.
// Call Load before use.
func NewService(snapshots repository.SnapshotRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		current:   domain.DefaultSettings(),
		snapshots: snapshots,
		log:       logger,
	}
}

// Load restores persisted settings, falling back to defaults when nothing
// was saved yet or the blob cannot be read.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := s.snapshots.Get(ctx, Namespace)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("could not load settings snapshot", "error", err)
		}
		s.current = domain.DefaultSettings()
		return
	}

	var snap settingsSnapshot
	if err := sonic.Unmarshal(payload, &snap); err != nil {
		s.log.Warn("could not decode settings snapshot", "error", err)
		s.current = domain.DefaultSettings()
		return
	}

	s.current = domain.Settings{
		Name:        snap.Name,
		PhoneNumber: snap.PhoneNumber,
		HourlyRate:  snap.HourlyRate,
		Currency:    snap.Currency,
		Language:    snap.Language,
	}
	defaults := domain.DefaultSettings()
	if s.current.Currency == "" {
		s.current.Currency = defaults.Currency
	}
	if s.current.Language == "" {
		s.current.Language = defaults.Language
	}
}

// Get returns the current settings.
func (s *Service) Get() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set validates and applies new settings, then saves. A failed save leaves
// the new settings in effect for this session.
func (s *Service) Set(ctx context.Context, next domain.Settings) error {
	if next.HourlyRate < 0 {
		return fmt.Errorf("hourly rate %v must not be negative", next.HourlyRate)
	}
	defaults := domain.DefaultSettings()
	if next.Currency == "" {
		next.Currency = defaults.Currency
	}
	if next.Language == "" {
		next.Language = defaults.Language
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next

	payload, err := sonic.Marshal(settingsSnapshot{
		Name:        next.Name,
		PhoneNumber: next.PhoneNumber,
		HourlyRate:  next.HourlyRate,
		Currency:    next.Currency,
		Language:    next.Language,
	})
	if err != nil {
		s.log.Warn("could not encode settings snapshot", "error", err)
		return nil
	}
	if err := s.snapshots.Put(ctx, Namespace, payload); err != nil {
		s.log.Warn("could not save settings snapshot", "error", err)
	}
	return nil
}
