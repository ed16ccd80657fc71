package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_HomeListsTopics(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewHome, d.ActiveViewID())
	d.RequireContains("Spacing Basics")
	d.RequireContains("Flexbox")
	d.RequireContains("0/3")
	d.RequireContains("Overall")
}

func TestTUI_HomeCursorMoves(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressEnter()
	assert.Equal(t, ViewChallenge, d.ActiveViewID())
	assert.Equal(t, "Flexbox", d.ActiveViewTitle())

	d.PressEsc()
	d.PressUp()
	d.PressEnter()
	assert.Equal(t, "Spacing Basics", d.ActiveViewTitle())
}

func TestTUI_WrongThenCorrectAnswer(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressEnter()
	require.Equal(t, ViewChallenge, d.ActiveViewID())
	d.RequireContains("Challenge 1/3")
	d.RequireContains("Target")

	d.Answer("m-4")
	d.RequireContains("Not quite.")
	d.RequireContains("Hint: Use p- for padding on all sides")

	d.Answer("m-4")
	d.RequireContains("Hint: The value 4 is 1rem")

	d.Answer("p-4")
	d.RequireContains("Correct!")
	d.RequireContains("p-4 is the answer.")
	assert.Equal(t, 1, app.Progress.TopicProgress("Spacing Basics").Completed)

	d.PressEnter()
	d.RequireContains("Challenge 2/3")
}

func TestTUI_TabShowsHintWithoutAdvancingCursor(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressEnter()
	d.PressTab()
	d.RequireContains("Hint: Use p- for padding on all sides")
	d.PressTab()
	d.RequireContains("Hint: Use p- for padding on all sides")
}

func TestTUI_EscReturnsHomeWithProgress(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressEnter()
	d.Answer("p-4")
	d.PressEsc()

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, "Spacing Basics", d.State().LastTopic)
	assert.Equal(t, 1, d.State().LastCompleted)
	d.RequireContains("1/3")
	d.RequireContains("[25%]")
}

func TestTUI_ResumeStartsAtPersistedCount(t *testing.T) {
	app := testApp(t)
	app.Progress.RecordCompletion(context.Background(), "Spacing Basics")
	app.Progress.RecordCompletion(context.Background(), "Spacing Basics")
	d := NewTestDriver(t, app)

	d.PressKey('r')
	require.Equal(t, ViewChallenge, d.ActiveViewID())
	d.RequireContains("Challenge 3/3")
}

func TestTUI_CompleteTopicThenNextTopic(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressEnter()
	d.SolveAll("p-4", "mt-4", "px-4")

	d.RequireContains("You finished Spacing Basics!")
	d.RequireContains("Accuracy")
	assert.Equal(t, 100, app.Progress.TopicPercent("Spacing Basics"))

	d.PressKey('n')
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Equal(t, "Flexbox", d.ActiveViewTitle())
	assert.Equal(t, "Flexbox", d.State().ActiveTopic)
	d.RequireContains("Challenge 1/1")
}

func TestTUI_RestartAfterCompletion(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressEnter()
	d.SolveAll("p-4", "mt-4", "px-4")
	d.PressKey('r')

	d.RequireContains("Challenge 1/3")
	d.RequireContains("score 30")
}

func TestTUI_ChatFromChallenge(t *testing.T) {
	app := testApp(t)
	asker := app.Chat.(*stubAsker)
	d := NewTestDriver(t, app)

	d.PressEnter()
	d.PressCtrl(tea.KeyCtrlT)
	require.Equal(t, ViewChat, d.ActiveViewID())

	d.Submit("what is padding")
	assert.Equal(t, 1, asker.calls)
	assert.Equal(t, "Spacing Basics", asker.topic)
	d.RequireContains("reply to what is padding")

	d.PressEsc()
	assert.Equal(t, ViewChallenge, d.ActiveViewID())
}

func TestTUI_ChatWithoutBridge(t *testing.T) {
	app := testApp(t)
	app.Chat = nil
	d := NewTestDriver(t, app)

	d.PressKey('c')
	require.Equal(t, ViewChat, d.ActiveViewID())

	d.Submit("hello")
	d.RequireContains("Sorry, I encountered an error.")
	assert.NotContains(t, d.View(), "(no reply)")
}

func TestTUI_QuitFromHome(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_QIsTypedInChallenge(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressEnter()
	d.PressKey('q')
	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewChallenge, d.ActiveViewID())
}
