package cli

import (
	"fmt"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tailquestHuhTheme returns a huh theme using the Gruvbox palette.
func tailquestHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: purple accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorPurple).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// selectTopicForm builds a topic picker over the catalog. Returns nil when
// the catalog is empty.
func selectTopicForm(app *App, result *string) *huh.Form {
	if app.Catalog == nil || app.Catalog.Len() == 0 {
		return nil
	}
	options := make([]huh.Option[string], 0, app.Catalog.Len())
	for _, t := range app.Catalog.Topics() {
		label := t.Name
		if app.Progress != nil {
			rec := app.Progress.TopicProgress(t.Name)
			label = formatter.PadRight(t.Name, 24) + formatter.RenderCompactBar(rec.Percent(), 10, rec.Done()) +
				" " + formatter.Dim(fmt.Sprintf("%d/%d", rec.Completed, rec.Total))
		}
		options = append(options, huh.NewOption(label, t.Name))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which topic?").
				Options(options...).
				Value(result),
		),
	).WithTheme(tailquestHuhTheme()).WithShowHelp(false)
}

// confirmResetForm asks before wiping progress.
func confirmResetForm(result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all progress?").
				Description("Every topic goes back to 0.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(tailquestHuhTheme()).WithShowHelp(false)
}
