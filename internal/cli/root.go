package cli

import (
	"github.com/spf13/cobra"

	"github.com/mlevkov/punchclock/internal/settings"
	"github.com/mlevkov/punchclock/internal/tracker"
)

// App holds the components CLI commands operate on.
type App struct {
	Tracker  *tracker.Tracker
	Settings *settings.Service

	// IsInteractive reports whether stdin is a terminal; destructive
	// confirmations are skipped in non-interactive runs that pass --yes.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "punchclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "punchclock",
		Short: "Single-timer work tracking with earnings reports",
	}

	root.AddCommand(
		newCategoryCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newPauseCmd(app),
		newResumeCmd(app),
		newSelectCmd(app),
		newStatusCmd(app),
		newReportCmd(app),
		newSettingsCmd(app),
		newWatchCmd(app),
	)

	return root
}
