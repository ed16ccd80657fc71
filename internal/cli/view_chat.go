package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/tailquest/internal/chat"
	"github.com/alexanderramin/tailquest/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatReplyMsg carries a reply from the assistant back to the chat view.
type chatReplyMsg struct {
	question string
	reply    string
}

type chatExchange struct {
	question string
	reply    string
}

// chatView is a small conversation pane backed by App.Chat.
type chatView struct {
	state   *SharedState
	topic   string
	input   textinput.Model
	spin    spinner.Model
	history []chatExchange
	pending bool
}

func newChatView(state *SharedState, topic string) *chatView {
	ti := textinput.New()
	ti.Placeholder = "ask about utility classes"
	ti.Prompt = formatter.StyleBlue.Render("? ")
	ti.CharLimit = 1000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return &chatView{state: state, topic: topic, input: ti, spin: sp}
}

func (v *chatView) ID() ViewID    { return ViewChat }
func (v *chatView) Title() string { return "Ask" }

func (v *chatView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

// ask runs the request off the update loop.
func (v *chatView) ask(question string) tea.Cmd {
	asker := v.state.App.asker()
	topic := v.topic
	return func() tea.Msg {
		return chatReplyMsg{question: question, reply: asker.Ask(context.Background(), question, topic)}
	}
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		v.pending = false
		v.history = append(v.history, chatExchange{question: msg.question, reply: msg.reply})
		return v, nil

	case spinner.TickMsg:
		if !v.pending {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			q := strings.TrimSpace(v.input.Value())
			if q == "" || v.pending {
				return v, nil
			}
			v.input.Reset()
			v.pending = true
			return v, tea.Batch(v.ask(q), v.spin.Tick)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder
	topic := v.topic
	if topic == "" {
		topic = chat.DefaultTopic
	}
	b.WriteString(formatter.Header("Ask"))
	b.WriteString("\n" + formatter.Dim("topic: "+topic) + "\n\n")

	b.WriteString(v.renderHistory())

	if v.pending {
		b.WriteString(v.spin.View() + " " + formatter.Dim("thinking...") + "\n")
	} else {
		b.WriteString(v.input.View() + "\n")
	}
	return b.String()
}

// renderHistory renders past exchanges, keeping only the newest lines that
// fit above the input.
func (v *chatView) renderHistory() string {
	width := v.state.ContentWidth()
	var b strings.Builder
	for _, ex := range v.history {
		b.WriteString(formatter.StyleBlue.Render("you: ") + ex.question + "\n")
		if ex.reply == "" {
			b.WriteString(formatter.Dim("(no reply)") + "\n\n")
			continue
		}
		b.WriteString(formatter.RenderMarkdown(ex.reply, width) + "\n\n")
	}

	lines := strings.Split(b.String(), "\n")
	if limit := v.state.ContentHeight() - 6; limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return strings.Join(lines, "\n")
}
