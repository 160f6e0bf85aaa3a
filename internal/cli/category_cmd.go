package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlevkov/punchclock/internal/cli/formatter"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage work categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryUpdateCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var name string
	var rate float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a work category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				// Fall back to the default rate from settings.
				rate = app.Settings.Get().HourlyRate
			}

			c, err := app.Tracker.AddCategory(context.Background(), name, rate)
			if err != nil {
				return err
			}

			fmt.Printf("Added category %s (%s, rate %.2f)\n", c.Name, c.ID, c.HourlyRate)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate (defaults to the settings rate)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := app.Tracker.Categories()
			if len(categories) == 0 {
				fmt.Println("No categories yet. Add one with: punchclock category add --name NAME --rate RATE")
				return nil
			}

			prefs := app.Settings.Get()
			lastSelected := app.Tracker.LastSelected()
			now := app.Tracker.Now()

			headers := []string{"ID", "NAME", "RATE", "STATE", "SESSION"}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				session := ""
				if c.Active() {
					session = formatter.FormatSeconds(c.Elapsed(now))
				}
				name := c.Name
				if c.ID == lastSelected {
					name = formatter.Bold(name + " *")
				}
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					name,
					formatter.Money(c.HourlyRate, prefs.Currency, prefs.Language),
					formatter.TimerPill(c),
					session,
				})
			}

			fmt.Print(formatter.RenderBox("Categories", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newCategoryUpdateCmd(app *App) *cobra.Command {
	var name string
	var rate float64

	cmd := &cobra.Command{
		Use:   "update CATEGORY",
		Short: "Update a category's name and rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("name") {
				name = c.Name
			}
			if !cmd.Flags().Changed("rate") {
				rate = c.HourlyRate
			}

			if err := app.Tracker.UpdateCategory(context.Background(), c.ID, name, rate); err != nil {
				return err
			}
			fmt.Printf("Updated category %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New category name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "New hourly rate")

	return cmd
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove CATEGORY",
		Short: "Remove a category and all of its reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveCategory(app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmDestructive(app,
				fmt.Sprintf("Delete category %q and all of its reports?", c.Name), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := app.Tracker.DeleteCategory(context.Background(), c.ID); err != nil {
				return err
			}
			fmt.Printf("Removed category %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
