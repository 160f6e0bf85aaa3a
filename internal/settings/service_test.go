package settings_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkov/punchclock/internal/domain"
	"github.com/mlevkov/punchclock/internal/repository"
	"github.com/mlevkov/punchclock/internal/settings"
	"github.com/mlevkov/punchclock/internal/testutil"
)

func newTestService(store repository.SnapshotRepo) *settings.Service {
	svc := settings.NewService(store, slog.New(slog.DiscardHandler))
	svc.Load(context.Background())
	return svc
}

func TestService_DefaultsWhenNothingSaved(t *testing.T) {
	svc := newTestService(repository.NewMemorySnapshotRepo())

	got := svc.Get()
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, 0.0, got.HourlyRate)
}

func TestService_SetAndReload(t *testing.T) {
	store := repository.NewMemorySnapshotRepo()
	svc := newTestService(store)
	ctx := context.Background()

	next := domain.Settings{
		Name:        "Pat",
		PhoneNumber: "+1 555 0100",
		HourlyRate:  42.5,
		Currency:    "EUR",
		Language:    "de",
	}
	require.NoError(t, svc.Set(ctx, next))
	assert.Equal(t, next, svc.Get())

	reloaded := newTestService(store)
	assert.Equal(t, next, reloaded.Get())
}

func TestService_SetFillsEmptyLocaleFields(t *testing.T) {
	svc := newTestService(repository.NewMemorySnapshotRepo())

	require.NoError(t, svc.Set(context.Background(), domain.Settings{Name: "Pat", HourlyRate: 10}))

	got := svc.Get()
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Pat", got.Name)
}

func TestService_RejectsNegativeRate(t *testing.T) {
	svc := newTestService(repository.NewMemorySnapshotRepo())

	err := svc.Set(context.Background(), domain.Settings{HourlyRate: -1})
	require.Error(t, err)
	assert.Equal(t, 0.0, svc.Get().HourlyRate, "rejected settings are not applied")
}

func TestService_MalformedBlobFallsBackToDefaults(t *testing.T) {
	store := repository.NewMemorySnapshotRepo()
	require.NoError(t, store.Put(context.Background(), settings.Namespace, []byte("{broken")))

	svc := newTestService(store)
	assert.Equal(t, domain.DefaultSettings(), svc.Get())
}

func TestService_SaveFailureKeepsNewSettings(t *testing.T) {
	svc := settings.NewService(testutil.FailingSnapshotRepo{}, slog.New(slog.DiscardHandler))
	svc.Load(context.Background())

	next := domain.Settings{Name: "Pat", Currency: "EUR", Language: "en"}
	require.NoError(t, svc.Set(context.Background(), next), "a failed save must not surface")
	assert.Equal(t, "Pat", svc.Get().Name)
}
