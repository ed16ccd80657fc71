package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the root screen: the topic list with progress bars.
type homeView struct {
	state   *SharedState
	topics  []domain.Topic
	records map[string]domain.ProgressRecord
	overall int
	cursor  int
}

func newHomeView(state *SharedState) *homeView {
	v := &homeView{state: state}
	v.reload()
	return v
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

// reload pulls topics and progress from the App. Progress lives in memory,
// so this is synchronous.
func (v *homeView) reload() {
	app := v.state.App
	if app.Catalog != nil {
		v.topics = app.Catalog.Topics()
	}
	v.records = make(map[string]domain.ProgressRecord, len(v.topics))
	if app.Progress != nil {
		for _, rec := range app.Progress.Records() {
			v.records[rec.Topic] = rec
		}
		v.overall = app.Progress.OverallPercent()
	}
	if v.cursor >= len(v.topics) {
		v.cursor = max(len(v.topics)-1, 0)
	}
}

// selected returns the topic under the cursor.
func (v *homeView) selected() (domain.Topic, bool) {
	if v.cursor < 0 || v.cursor >= len(v.topics) {
		return domain.Topic{}, false
	}
	return v.topics[v.cursor], true
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.topics)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.open(0)
		case "r":
			t, ok := v.selected()
			if !ok {
				return v, nil
			}
			return v, v.open(v.records[t.Name].Completed)
		case "c":
			return v, pushView(newChatView(v.state, v.state.ActiveTopic))
		}
	}
	return v, nil
}

// open pushes a challenge view for the selected topic at start.
func (v *homeView) open(start int) tea.Cmd {
	t, ok := v.selected()
	if !ok {
		return nil
	}
	cv := newChallengeView(v.state, t.Name, start)
	return pushView(cv)
}

func (v *homeView) View() string {
	if len(v.topics) == 0 {
		return formatter.Dim("  No topics in the catalog.")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Topics"))
	b.WriteString("\n\n")

	for i, t := range v.topics {
		rec := v.records[t.Name]
		cursor := "  "
		name := formatter.PadRight(t.Name, 24)
		if i == v.cursor {
			cursor = formatter.StylePurple.Render("▸ ")
			name = formatter.Bold(name)
		}
		mark := " "
		if rec.Done() {
			mark = formatter.StyleGreen.Render("✓")
		}
		fmt.Fprintf(&b, "%s%s %s %s  %s\n",
			cursor, mark, name,
			formatter.RenderProgress(rec.Percent(), 16),
			formatter.Dim(fmt.Sprintf("%d/%d", rec.Completed, t.Len())),
		)
	}

	fmt.Fprintf(&b, "\n  %s %s\n", formatter.Bold("Overall"), formatter.RenderProgress(v.overall, 24))

	if t, ok := v.selected(); ok && t.Summary != "" {
		b.WriteString("\n  " + formatter.Dim(t.Summary) + "\n")
	}
	if v.state.LastTopic != "" {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("Last session: %s, %d solved", v.state.LastTopic, v.state.LastCompleted)) + "\n")
	}
	return b.String()
}
