package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlevkov/punchclock/internal/cli/formatter"
	"github.com/mlevkov/punchclock/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect recorded work sessions",
	}

	cmd.AddCommand(
		newReportListCmd(app),
		newReportRemoveCmd(app),
		newReportStatsCmd(app),
	)

	return cmd
}

// reportFilterFlags registers the shared --category/--year/--month flags and
// returns a builder resolving them against the current clock.
func reportFilterFlags(app *App, cmd *cobra.Command) func() (report.Filter, error) {
	var category string
	var year, month int

	cmd.Flags().StringVar(&category, "category", report.AllCategories, "Category id or name, or \"all\"")
	cmd.Flags().IntVar(&year, "year", 0, "Year of the report window (defaults to the current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 of the report window (defaults to the current month)")

	return func() (report.Filter, error) {
		now := app.Tracker.Now()
		f := report.Filter{
			CategoryID: report.AllCategories,
			Year:       now.Year(),
			Month:      now.Month(),
		}
		if category != report.AllCategories {
			c, err := resolveCategory(app, category)
			if err != nil {
				return report.Filter{}, err
			}
			f.CategoryID = c.ID
		}
		if year != 0 {
			f.Year = year
		}
		if month != 0 {
			if month < 1 || month > 12 {
				return report.Filter{}, fmt.Errorf("month %d out of range 1-12", month)
			}
			f.Month = time.Month(month)
		}
		return f, nil
	}
}

func newReportListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports for a month",
	}
	buildFilter := reportFilterFlags(app, cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}

		now := app.Tracker.Now()
		reports := f.Matching(app.Tracker.Reports(), now.Location())
		if len(reports) == 0 {
			fmt.Println("No reports for the selected period.")
			return nil
		}

		prefs := app.Settings.Get()
		headers := []string{"ID", "CATEGORY", "START", "END", "DURATION", "EARNED"}
		rows := make([][]string, 0, len(reports))
		for _, r := range reports {
			rows = append(rows, []string{
				formatter.TruncID(r.ID),
				r.CategoryName,
				formatter.Timestamp(r.StartedAt),
				formatter.Timestamp(r.EndedAt),
				formatter.FormatSeconds(r.Duration),
				formatter.Money(r.Earned(), prefs.Currency, prefs.Language),
			})
		}

		fmt.Print(formatter.RenderBox("Reports", formatter.RenderTable(headers, rows)))
		return nil
	}

	return cmd
}

func newReportRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveReport(app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDestructive(app,
				fmt.Sprintf("Delete the %s report for %q?",
					formatter.FormatSeconds(r.Duration), r.CategoryName), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := app.Tracker.DeleteReport(context.Background(), r.ID); err != nil {
				return err
			}
			fmt.Printf("Removed report %s\n", r.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newReportStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated statistics for a month",
	}
	buildFilter := reportFilterFlags(app, cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		f, err := buildFilter()
		if err != nil {
			return err
		}

		stats := report.Aggregate(app.Tracker.Reports(), f, app.Tracker.Now())
		prefs := app.Settings.Get()

		money := func(v float64) string {
			return formatter.Money(v, prefs.Currency, prefs.Language)
		}
		rows := [][]string{
			{"Total", formatter.FormatSeconds(stats.TotalTime), money(stats.TotalEarned)},
			{"This week", formatter.FormatSeconds(stats.WeekTime), money(stats.WeekEarned)},
			{"This month", formatter.FormatSeconds(stats.MonthTime), money(stats.MonthEarned)},
			{"This year", formatter.FormatSeconds(stats.YearTime), money(stats.YearEarned)},
			{"Average day", formatter.FormatSeconds(stats.AvgDay), money(stats.AvgDayEarned)},
			{"Best day", formatter.FormatSeconds(stats.MaxDay), money(stats.MaxDayEarned)},
			{"Slowest day", formatter.FormatSeconds(stats.MinDay), money(stats.MinDayEarned)},
			{"Forecast (avg day)", formatter.FormatSeconds(stats.Forecast), money(stats.ForecastEarned)},
		}

		title := fmt.Sprintf("Stats %d-%02d", f.Year, int(f.Month))
		fmt.Print(formatter.RenderBox(title, formatter.RenderTable([]string{"WINDOW", "TIME", "EARNED"}, rows)))
		return nil
	}

	return cmd
}
