package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/punchclock/internal/cli/formatter"
)

// syncEvery is how many ticks pass between durability flushes of the running
// session's accrued time.
const syncEvery = 60

type watchKeyMap struct {
	Toggle key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchModel is a read-mostly presentation loop: the displayed counter is
// derived from the tracker's clock on every tick and never written back.
// The only mutations are the explicit key-driven transitions and the
// periodic SyncTime flush.
type watchModel struct {
	app   *App
	keys  watchKeyMap
	now   time.Time
	ticks int
}

func newWatchModel(app *App) watchModel {
	return watchModel{
		app:  app,
		keys: defaultWatchKeyMap(),
		now:  app.Tracker.Now(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tickCmd()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tickMsg:
		m.now = time.Time(msg)
		m.ticks++
		if m.ticks%syncEvery == 0 {
			_ = m.app.Tracker.SyncTime(context.Background())
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if active, ok := m.app.Tracker.ActiveCategory(); ok {
				if active.Running {
					_ = m.app.Tracker.Pause(context.Background())
				} else {
					_ = m.app.Tracker.Resume(context.Background())
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Stop):
			_ = m.app.Tracker.Stop(context.Background())
			return m, nil
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	active, ok := m.app.Tracker.ActiveCategory()
	if !ok {
		return formatter.RenderBox("Watch",
			formatter.Dim("No active session. Start one with: punchclock start CATEGORY")) +
			"\n" + m.helpLine()
	}

	prefs := m.app.Settings.Get()
	elapsed := active.Elapsed(m.now)
	earned := float64(elapsed) / 3600 * active.HourlyRate

	content := formatter.Bold(active.Name) + "  " + formatter.TimerPill(active) + "\n\n" +
		formatter.StyleHeader.Render(formatter.FormatSeconds(elapsed)) + "\n" +
		formatter.Dim(formatter.Money(earned, prefs.Currency, prefs.Language))

	return formatter.RenderBox("Watch", content) + "\n" + m.helpLine()
}

func (m watchModel) helpLine() string {
	return formatter.Dim("space pause/resume · s stop · q quit")
}
