package testutil

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/tailquest/internal/catalog"
)

// Topic options
type TopicOption func(*catalog.TopicConfig)

func WithSlug(s string) TopicOption {
	return func(t *catalog.TopicConfig) {
		t.Slug = s
	}
}

func WithSummary(s string) TopicOption {
	return func(t *catalog.TopicConfig) {
		t.Summary = s
	}
}

// WithChallenge appends a challenge with the given answer and hints.
func WithChallenge(answer string, hints ...string) TopicOption {
	return func(t *catalog.TopicConfig) {
		n := len(t.Challenges) + 1
		t.Challenges = append(t.Challenges, catalog.ChallengeConfig{
			Title:          fmt.Sprintf("%s %d", t.Name, n),
			Description:    fmt.Sprintf("Type %s", answer),
			CorrectAnswer:  answer,
			Hints:          hints,
			Explanation:    fmt.Sprintf("%s is the answer.", answer),
			PreviewContent: "Preview",
			PreviewClasses: "bg-gray-200",
		})
	}
}

// NewTestTopic builds a topic config. Without WithChallenge options the topic
// gets a single "p-4" challenge so it passes validation.
func NewTestTopic(name string, opts ...TopicOption) catalog.TopicConfig {
	t := catalog.TopicConfig{Name: name}
	for _, opt := range opts {
		opt(&t)
	}
	if len(t.Challenges) == 0 {
		WithChallenge("p-4", "Padding uses p-")(&t)
	}
	return t
}

// SpacingBasics returns the three-challenge spacing topic used by scenario tests.
func SpacingBasics() catalog.TopicConfig {
	return NewTestTopic("Spacing Basics",
		WithChallenge("p-4", "Use p- for padding on all sides", "The value 4 is 1rem"),
		WithChallenge("mt-4", "Margin top is mt-"),
		WithChallenge("px-4", "Horizontal padding is px-", "x covers left and right"),
	)
}

// NewTestCatalog builds a validated catalog from the given topics. With no
// topics it uses SpacingBasics plus a one-challenge "Flexbox" topic.
func NewTestCatalog(t *testing.T, topics ...catalog.TopicConfig) *catalog.Catalog {
	t.Helper()
	if len(topics) == 0 {
		topics = []catalog.TopicConfig{
			SpacingBasics(),
			NewTestTopic("Flexbox", WithChallenge("flex", "Display flex is just flex")),
		}
	}
	cat, err := catalog.New(&catalog.CatalogSchema{Version: "1", Topics: topics})
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}
