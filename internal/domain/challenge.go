package domain

import "strings"

// Challenge is a single prompt the learner answers with utility classes.
type Challenge struct {
	Title          string
	Description    string
	CorrectAnswer  string
	Hints          []string
	Explanation    string
	PreviewContent string
	PreviewClasses string
}

// Matches reports whether answer equals the correct answer after trimming
// surrounding whitespace. Internal whitespace and token order are significant.
func (c Challenge) Matches(answer string) bool {
	return strings.TrimSpace(answer) == c.CorrectAnswer
}

// HintAt returns the hint at cursor, wrapping around the hint list.
// Returns "" when the challenge has no hints.
func (c Challenge) HintAt(cursor int) string {
	if len(c.Hints) == 0 {
		return ""
	}
	if cursor < 0 {
		cursor = 0
	}
	return c.Hints[cursor%len(c.Hints)]
}

// TargetClasses joins the correct answer with the preview base classes,
// the class list a fully solved preview carries.
func (c Challenge) TargetClasses() string {
	return strings.TrimSpace(c.CorrectAnswer + " " + c.PreviewClasses)
}

// Topic is a named, ordered group of challenges.
type Topic struct {
	Name       string
	Slug       string
	Summary    string
	Challenges []Challenge
}

// Len returns the number of challenges in the topic.
func (t Topic) Len() int {
	return len(t.Challenges)
}
