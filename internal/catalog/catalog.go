// Package catalog holds the static set of topics and challenges.
// A Catalog is built once from a validated schema and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/gosimple/slug"
	"go.uber.org/multierr"
)

var (
	// ErrTopicNotFound is returned for topic names outside the catalog.
	ErrTopicNotFound = fmt.Errorf("topic not found: %w", domain.ErrInvalidTopic)

	// ErrIndexOutOfRange is returned for challenge indexes outside a topic.
	ErrIndexOutOfRange = errors.New("challenge index out of range")
)

// Catalog maps topic names to their ordered challenges.
type Catalog struct {
	topics []domain.Topic
	byName map[string]int
}

// New validates schema and builds a Catalog from it.
func New(schema *CatalogSchema) (*Catalog, error) {
	if schema == nil {
		return nil, errors.New("catalog schema is nil")
	}
	if err := multierr.Combine(ValidateSchema(schema)...); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{
		topics: make([]domain.Topic, 0, len(schema.Topics)),
		byName: make(map[string]int, len(schema.Topics)),
	}
	for _, tc := range schema.Topics {
		topic := domain.Topic{
			Name:       tc.Name,
			Slug:       topicSlug(tc),
			Summary:    tc.Summary,
			Challenges: make([]domain.Challenge, 0, len(tc.Challenges)),
		}
		for _, cc := range tc.Challenges {
			topic.Challenges = append(topic.Challenges, domain.Challenge{
				Title:          cc.Title,
				Description:    cc.Description,
				CorrectAnswer:  cc.CorrectAnswer,
				Hints:          cc.AllHints(),
				Explanation:    cc.Explanation,
				PreviewContent: cc.PreviewContent,
				PreviewClasses: cc.PreviewClasses,
			})
		}
		c.byName[topic.Name] = len(c.topics)
		c.topics = append(c.topics, topic)
	}
	return c, nil
}

// Topic returns the topic with the given name.
func (c *Catalog) Topic(name string) (domain.Topic, error) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Topic{}, fmt.Errorf("%q: %w", name, ErrTopicNotFound)
	}
	return cloneTopic(c.topics[i]), nil
}

// Challenge returns the challenge at index within the named topic.
func (c *Catalog) Challenge(topicName string, index int) (domain.Challenge, error) {
	i, ok := c.byName[topicName]
	if !ok {
		return domain.Challenge{}, fmt.Errorf("%q: %w", topicName, ErrTopicNotFound)
	}
	challenges := c.topics[i].Challenges
	if index < 0 || index >= len(challenges) {
		return domain.Challenge{}, fmt.Errorf("%s[%d]: %w", topicName, index, ErrIndexOutOfRange)
	}
	return cloneChallenge(challenges[index]), nil
}

// Has reports whether name is a catalog topic.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// TopicLen returns the number of challenges in the named topic, 0 if unknown.
func (c *Catalog) TopicLen(name string) int {
	i, ok := c.byName[name]
	if !ok {
		return 0
	}
	return len(c.topics[i].Challenges)
}

// Topics returns all topics in declaration order.
func (c *Catalog) Topics() []domain.Topic {
	out := make([]domain.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = cloneTopic(t)
	}
	return out
}

// Names returns topic names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.topics))
	for i, t := range c.topics {
		names[i] = t.Name
	}
	return names
}

// Totals returns the challenge count per topic.
func (c *Catalog) Totals() map[string]int {
	totals := make(map[string]int, len(c.topics))
	for _, t := range c.topics {
		totals[t.Name] = len(t.Challenges)
	}
	return totals
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Resolve finds a topic by exact name, case-insensitive name, or slug.
func (c *Catalog) Resolve(arg string) (domain.Topic, error) {
	arg = strings.TrimSpace(arg)
	if t, err := c.Topic(arg); err == nil {
		return t, nil
	}
	want := slug.Make(arg)
	for _, t := range c.topics {
		if strings.EqualFold(t.Name, arg) || t.Slug == arg || t.Slug == want {
			return cloneTopic(t), nil
		}
	}
	return domain.Topic{}, fmt.Errorf("%q: %w", arg, ErrTopicNotFound)
}

func cloneTopic(t domain.Topic) domain.Topic {
	challenges := make([]domain.Challenge, len(t.Challenges))
	for i, ch := range t.Challenges {
		challenges[i] = cloneChallenge(ch)
	}
	t.Challenges = challenges
	return t
}

func cloneChallenge(ch domain.Challenge) domain.Challenge {
	ch.Hints = slices.Clone(ch.Hints)
	return ch
}
