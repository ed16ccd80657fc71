package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChallengeMatches_TrimsSurroundingWhitespace(t *testing.T) {
	c := Challenge{CorrectAnswer: "p-4"}
	cases := []string{"p-4", " p-4", "p-4  ", "\tp-4\n"}
	for _, in := range cases {
		assert.True(t, c.Matches(in), "should accept %q", in)
	}
}

func TestChallengeMatches_StrictInternalWhitespaceAndOrder(t *testing.T) {
	c := Challenge{CorrectAnswer: "flex justify-center"}

	assert.True(t, c.Matches("flex justify-center"))
	assert.False(t, c.Matches("justify-center flex"), "token order is significant")
	assert.False(t, c.Matches("flex  justify-center"), "internal whitespace is significant")
	assert.False(t, c.Matches("FLEX justify-center"))
	assert.False(t, c.Matches(""))
}

func TestChallengeHintAt_Wraps(t *testing.T) {
	c := Challenge{Hints: []string{"first", "second"}}

	assert.Equal(t, "first", c.HintAt(0))
	assert.Equal(t, "second", c.HintAt(1))
	assert.Equal(t, "first", c.HintAt(2))
	assert.Equal(t, "first", c.HintAt(-3))
}

func TestChallengeHintAt_NoHints(t *testing.T) {
	assert.Equal(t, "", Challenge{}.HintAt(0))
}

func TestChallengeTargetClasses(t *testing.T) {
	c := Challenge{CorrectAnswer: "p-4", PreviewClasses: "bg-gray-200 rounded"}
	assert.Equal(t, "p-4 bg-gray-200 rounded", c.TargetClasses())

	c.PreviewClasses = ""
	assert.Equal(t, "p-4", c.TargetClasses())
}

func TestProgressRecordClamp(t *testing.T) {
	tests := []struct {
		name string
		in   ProgressRecord
		want int
	}{
		{"within range", ProgressRecord{Completed: 2, Total: 3}, 2},
		{"over total", ProgressRecord{Completed: 9, Total: 3}, 3},
		{"negative", ProgressRecord{Completed: -1, Total: 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp().Completed)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(0, 3))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(3, 3))
}

func TestProgressRecordDone(t *testing.T) {
	assert.False(t, ProgressRecord{Completed: 0, Total: 0}.Done())
	assert.False(t, ProgressRecord{Completed: 1, Total: 2}.Done())
	assert.True(t, ProgressRecord{Completed: 2, Total: 2}.Done())
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "Topic complete", PhaseTopicComplete.Label())
	assert.Equal(t, "weird", Phase("weird").Label())
	assert.True(t, ValidPhases[string(PhaseCorrect)])
}
