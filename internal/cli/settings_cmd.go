package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlevkov/punchclock/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Settings.Get()
			rows := [][]string{
				{"Name", s.Name},
				{"Phone", s.PhoneNumber},
				{"Default rate", fmt.Sprintf("%.2f", s.HourlyRate)},
				{"Currency", s.Currency},
				{"Language", s.Language},
			}
			fmt.Print(formatter.RenderBox("Settings", formatter.RenderTable([]string{"KEY", "VALUE"}, rows)))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var name, phone, currency, language string
	var rate float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (unset flags keep their current value)",
		RunE: func(cmd *cobra.Command, args []string) error {
			next := app.Settings.Get()
			if cmd.Flags().Changed("name") {
				next.Name = name
			}
			if cmd.Flags().Changed("phone") {
				next.PhoneNumber = phone
			}
			if cmd.Flags().Changed("rate") {
				next.HourlyRate = rate
			}
			if cmd.Flags().Changed("currency") {
				next.Currency = currency
			}
			if cmd.Flags().Changed("language") {
				next.Language = language
			}

			if err := app.Settings.Set(context.Background(), next); err != nil {
				return err
			}
			fmt.Println("Settings updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Default hourly rate for new categories")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code, e.g. USD or EUR")
	cmd.Flags().StringVar(&language, "language", "", "BCP 47 language tag, e.g. en or ru")

	return cmd
}
