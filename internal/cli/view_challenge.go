package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// challengeView runs one session over a topic. It owns a text input for
// answers and renders a target preview beside a live preview of the input.
type challengeView struct {
	state    *SharedState
	topic    string
	sess     *session.Session
	input    textinput.Model
	feedback string
	err      error
}

func newChallengeView(state *SharedState, topic string, start int) *challengeView {
	ti := textinput.New()
	ti.Placeholder = "type utility classes, e.g. p-4"
	ti.Prompt = formatter.StylePurple.Render("❯ ")
	ti.CharLimit = 256
	ti.Focus()

	v := &challengeView{
		state: state,
		topic: topic,
		input: ti,
	}
	if state.App.Catalog == nil {
		v.err = fmt.Errorf("no catalog loaded")
		return v
	}
	v.sess = session.New(state.App.Catalog, state.App.recorder())
	if err := v.sess.Start(topic, start); err != nil {
		v.err = err
	}
	state.ActiveTopic = topic
	return v
}

func (v *challengeView) ID() ViewID    { return ViewChallenge }
func (v *challengeView) Title() string { return v.topic }

func (v *challengeView) ShortHelp() []key.Binding {
	if v.sess == nil {
		return []key.Binding{key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))}
	}
	switch v.sess.Phase() {
	case domain.PhaseCorrect:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
		}
	case domain.PhaseTopicComplete:
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next topic")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "home")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "hint")),
			key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "ask")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
		}
	}
}

func (v *challengeView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *challengeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.sess == nil {
		if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyEsc || k.Type == tea.KeyEnter) {
			return v, popView()
		}
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.input.Width = max(msg.Width-8, 20)
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, v.leave()
		case tea.KeyCtrlT:
			return v, pushView(newChatView(v.state, v.topic))
		}

		switch v.sess.Phase() {
		case domain.PhaseInChallenge:
			return v.updateInChallenge(msg)
		case domain.PhaseCorrect:
			if msg.Type == tea.KeyEnter {
				v.advance()
			}
			return v, nil
		case domain.PhaseTopicComplete:
			return v.updateComplete(msg)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *challengeView) updateInChallenge(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		answer := v.input.Value()
		if strings.TrimSpace(answer) == "" {
			return v, nil
		}
		res, err := v.sess.Submit(context.Background(), answer)
		if err != nil {
			v.err = err
			return v, nil
		}
		if res.Correct {
			v.feedback = formatter.FormatCorrect(res.Explanation, res.Score)
			return v, nil
		}
		v.input.Reset()
		v.feedback = formatter.FormatWrong(res.Hint)
		return v, nil

	case tea.KeyTab:
		hint, err := v.sess.Hint()
		if err != nil {
			v.err = err
			return v, nil
		}
		if hint == "" {
			v.feedback = formatter.Dim("No hints for this one.")
		} else {
			v.feedback = formatter.StyleYellow.Render("Hint: ") + hint
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// advance moves past a solved challenge and clears the answer box.
func (v *challengeView) advance() {
	if _, err := v.sess.Advance(); err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.feedback = ""
	v.input.Reset()
}

func (v *challengeView) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "r":
		if err := v.sess.Restart(); err != nil {
			v.err = err
		}
		v.feedback = ""
		v.input.Reset()
		return v, nil
	case msg.String() == "n":
		if next := v.nextTopic(); next != "" {
			return v, replaceView(newChallengeView(v.state, next, 0))
		}
		return v, v.leave()
	case msg.Type == tea.KeyEnter:
		return v, v.leave()
	}
	return v, nil
}

// leave returns to the home view with this session's counters.
func (v *challengeView) leave() tea.Cmd {
	snap := v.sess.Snapshot()
	return goHome(snap.Topic, snap.Completed)
}

// nextTopic returns the topic after this one in catalog order, or "".
func (v *challengeView) nextTopic() string {
	names := v.state.App.Catalog.Names()
	for i, n := range names {
		if n == v.topic && i+1 < len(names) {
			return names[i+1]
		}
	}
	return ""
}

func (v *challengeView) View() string {
	if v.err != nil && v.sess == nil {
		return formatter.StyleRed.Render("  Error: "+v.err.Error()) + "\n"
	}

	snap := v.sess.Snapshot()
	width := min(v.state.ContentWidth()-4, 60)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		formatter.PhaseIndicator(snap.Phase),
		formatter.RenderProgress(v.sess.TopicPercent(), 16),
		formatter.Dim(fmt.Sprintf("score %d", snap.Score)),
	)

	if snap.Phase == domain.PhaseTopicComplete {
		b.WriteString(formatter.FormatCompletion(snap.Topic, snap.Score, snap.Completed, v.sess.AccuracyPercent()))
		b.WriteString("\n")
		return b.String()
	}

	ch, err := v.sess.Current()
	if err != nil {
		return formatter.StyleRed.Render("  Error: "+err.Error()) + "\n"
	}
	b.WriteString(formatter.FormatChallenge(ch, snap.Index, snap.Total))
	b.WriteString("\n")

	sheet := v.state.App.Sheet
	b.WriteString(formatter.Dim("Target") + "\n")
	b.WriteString(formatter.RenderPreview(sheet, ch.PreviewContent, ch.TargetClasses(), width))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim("Yours") + "\n")
	live := strings.TrimSpace(v.input.Value() + " " + ch.PreviewClasses)
	b.WriteString(formatter.RenderPreview(sheet, ch.PreviewContent, live, width))
	b.WriteString("\n\n")

	if snap.Phase == domain.PhaseInChallenge {
		b.WriteString(v.input.View())
		b.WriteString("\n")
	}
	if v.feedback != "" {
		b.WriteString("\n" + v.feedback + "\n")
	}
	if v.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(v.err.Error()) + "\n")
	}
	return b.String()
}
