package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Topic of the most recent challenge view, used as the chat topic.
	ActiveTopic string

	// Set when a session hands control back to home.
	LastTopic     string
	LastCompleted int

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width, with a floor for tiny terminals.
func (s *SharedState) ContentWidth() int {
	if s.Width < 40 {
		return 80
	}
	return s.Width
}
