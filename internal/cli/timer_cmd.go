package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlevkov/punchclock/internal/cli/formatter"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start CATEGORY",
		Short: "Start the timer on a category (closes any open session first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tracker.Start(context.Background(), c.ID); err != nil {
				return err
			}
			fmt.Printf("Started %s\n", c.Name)
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the open session and record a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			active, ok := app.Tracker.ActiveCategory()
			if !ok {
				fmt.Println("No active session.")
				return nil
			}
			elapsed := active.Elapsed(app.Tracker.Now())
			if err := app.Tracker.Stop(context.Background()); err != nil {
				return err
			}
			fmt.Printf("Stopped %s after %s\n", active.Name, formatter.FormatSeconds(elapsed))
			return nil
		},
	}
}

func newPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer (the session stays open)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.Pause(context.Background()); err != nil {
				return err
			}
			if active, ok := app.Tracker.ActiveCategory(); ok && active.Paused {
				fmt.Printf("Paused %s at %s\n", active.Name,
					formatter.FormatSeconds(active.AccruedSeconds))
			} else {
				fmt.Println("Nothing running.")
			}
			return nil
		},
	}
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.Resume(context.Background()); err != nil {
				return err
			}
			if active, ok := app.Tracker.ActiveCategory(); ok && active.Running {
				fmt.Printf("Resumed %s\n", active.Name)
			} else {
				fmt.Println("Nothing paused.")
			}
			return nil
		},
	}
}

func newSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select CATEGORY",
		Short: "Select a category without starting its timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tracker.Select(context.Background(), c.ID); err != nil {
				return err
			}
			fmt.Printf("Selected %s\n", c.Name)
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			active, ok := app.Tracker.ActiveCategory()
			if !ok {
				fmt.Println("No active session.")
				if id := app.Tracker.LastSelected(); id != "" {
					if c, err := app.Tracker.CategoryByID(id); err == nil {
						fmt.Printf("Last selected: %s\n", c.Name)
					}
				}
				return nil
			}

			prefs := app.Settings.Get()
			elapsed := active.Elapsed(app.Tracker.Now())
			earned := float64(elapsed) / 3600 * active.HourlyRate

			lines := fmt.Sprintf("%s  %s\n\n%s  %s",
				formatter.Bold(active.Name),
				formatter.TimerPill(active),
				formatter.FormatSeconds(elapsed),
				formatter.Dim(formatter.Money(earned, prefs.Currency, prefs.Language)),
			)
			fmt.Println(formatter.RenderBox("Session", lines))
			return nil
		},
	}
}
