package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data, e.g.
// the home view after a challenge recorded progress.
type refreshViewMsg struct{}

// homeMsg pops back to the home view and carries the informational
// topic/completed pair of the session that just ended.
type homeMsg struct {
	topic     string
	completed int
}

type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func goHome(topic string, completed int) tea.Cmd {
	return func() tea.Msg { return homeMsg{topic: topic, completed: completed} }
}
