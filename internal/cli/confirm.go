package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// confirmDestructive asks before an irreversible action. There is no undo,
// so the prompt is mandatory in interactive runs; --yes (or a non-terminal
// stdin combined with --yes) bypasses it.
func confirmDestructive(app *App, prompt string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if app.IsInteractive != nil && !app.IsInteractive() {
		return false, fmt.Errorf("refusing destructive action without --yes in non-interactive mode")
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return confirmed, nil
}
