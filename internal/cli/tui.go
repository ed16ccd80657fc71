package cli

import tea "github.com/charmbracelet/bubbletea"

// runProgram starts the full-screen TUI and blocks until it exits.
func runProgram(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
