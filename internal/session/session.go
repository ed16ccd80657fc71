// Package session implements the challenge progression state machine.
//
// A Session walks one topic's challenges: Start enters a challenge, Submit
// checks an answer, Advance moves past a solved challenge and Restart goes
// back to the first one. Transitions return results; nothing is rendered here.
package session

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tailquest/internal/domain"
)

// Catalog is the read-only challenge source a session walks.
type Catalog interface {
	Topic(name string) (domain.Topic, error)
}

// Recorder receives a completion after every correct answer.
// *progress.Store satisfies it.
type Recorder interface {
	RecordCompletion(ctx context.Context, topic string) bool
}

// State is a snapshot of a session.
type State struct {
	Phase      domain.Phase `json:"phase"`
	Topic      string       `json:"topic"`
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	Score      int          `json:"score"`
	Completed  int          `json:"completed"`
	HintCursor int          `json:"hintCursor"`
}

// Result is the outcome of a Submit.
type Result struct {
	Correct     bool   `json:"correct"`
	Hint        string `json:"hint,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Recorded    bool   `json:"recorded"`
	Score       int    `json:"score"`
}

// Session is not safe for concurrent use.
type Session struct {
	catalog  Catalog
	recorder Recorder

	phase      domain.Phase
	topic      domain.Topic
	index      int
	score      int
	completed  int
	hintCursor int
}

// Option configures a Session.
type Option func(*Session)

// WithInitialScore seeds the score and completed counters, for resuming a
// session whose counters live elsewhere.
func WithInitialScore(score, completed int) Option {
	return func(s *Session) {
		s.score = score
		s.completed = completed
	}
}

// New creates an idle session. recorder may be nil.
func New(catalog Catalog, recorder Recorder, opts ...Option) *Session {
	s := &Session{catalog: catalog, recorder: recorder, phase: domain.PhaseIdle}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start enters topic at startIndex from any phase. A negative index starts
// at the first challenge; an index past the end completes the topic.
func (s *Session) Start(topic string, startIndex int) error {
	t, err := s.catalog.Topic(topic)
	if err != nil {
		return fmt.Errorf("starting %q: %w", topic, err)
	}
	if startIndex < 0 {
		startIndex = 0
	}
	s.topic = t
	s.index = startIndex
	s.hintCursor = 0
	if s.index >= t.Len() {
		s.phase = domain.PhaseTopicComplete
		return nil
	}
	s.phase = domain.PhaseInChallenge
	return nil
}

// Submit checks text against the current challenge. Only valid while in a
// challenge. A wrong answer exposes the hint at the cursor and moves the
// cursor on by one.
func (s *Session) Submit(ctx context.Context, text string) (Result, error) {
	if s.phase != domain.PhaseInChallenge {
		return Result{}, s.transitionErr("submit")
	}
	ch, err := s.Current()
	if err != nil {
		s.phase = domain.PhaseTopicComplete
		return Result{}, s.transitionErr("submit")
	}

	if !ch.Matches(text) {
		res := Result{Hint: ch.HintAt(s.hintCursor), Score: s.score}
		if n := len(ch.Hints); n > 0 {
			s.hintCursor = (s.hintCursor + 1) % n
		}
		return res, nil
	}

	s.score += domain.PointsPerCorrect
	s.completed++
	s.phase = domain.PhaseCorrect
	res := Result{Correct: true, Explanation: ch.Explanation, Score: s.score}
	if s.recorder != nil {
		res.Recorded = s.recorder.RecordCompletion(ctx, s.topic.Name)
	}
	return res, nil
}

// Advance moves past a solved challenge. Returns the new phase.
func (s *Session) Advance() (domain.Phase, error) {
	if s.phase != domain.PhaseCorrect {
		return s.phase, s.transitionErr("advance")
	}
	s.index++
	s.hintCursor = 0
	if s.index >= s.topic.Len() {
		s.phase = domain.PhaseTopicComplete
	} else {
		s.phase = domain.PhaseInChallenge
	}
	return s.phase, nil
}

// Restart returns to the first challenge of the current topic. Score and
// completed count carry over.
func (s *Session) Restart() error {
	if s.phase != domain.PhaseInChallenge && s.phase != domain.PhaseTopicComplete {
		return s.transitionErr("restart")
	}
	s.index = 0
	s.hintCursor = 0
	if s.topic.Len() == 0 {
		s.phase = domain.PhaseTopicComplete
		return nil
	}
	s.phase = domain.PhaseInChallenge
	return nil
}

// Hint returns the hint at the cursor without moving it.
func (s *Session) Hint() (string, error) {
	if s.phase != domain.PhaseInChallenge {
		return "", s.transitionErr("hint")
	}
	ch, err := s.Current()
	if err != nil {
		return "", err
	}
	return ch.HintAt(s.hintCursor), nil
}

// Current returns the challenge at the current index.
func (s *Session) Current() (domain.Challenge, error) {
	if s.phase == domain.PhaseIdle || s.index < 0 || s.index >= s.topic.Len() {
		return domain.Challenge{}, fmt.Errorf("no current challenge in phase %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	return s.topic.Challenges[s.index], nil
}

// Accuracy is completed/(completed+2), or 0 before any correct answer.
func (s *Session) Accuracy() float64 {
	if s.completed <= 0 {
		return 0
	}
	return float64(s.completed) / float64(s.completed+2)
}

// AccuracyPercent returns Accuracy as a rounded percentage.
func (s *Session) AccuracyPercent() int {
	return domain.Percent(s.completed, s.completed+2)
}

// TopicPercent is the position within the topic as a rounded percentage.
func (s *Session) TopicPercent() int {
	if s.phase == domain.PhaseTopicComplete {
		return 100
	}
	return domain.Percent(s.index, s.topic.Len())
}

func (s *Session) Phase() domain.Phase { return s.phase }

func (s *Session) Snapshot() State {
	return State{
		Phase:      s.phase,
		Topic:      s.topic.Name,
		Index:      s.index,
		Total:      s.topic.Len(),
		Score:      s.score,
		Completed:  s.completed,
		HintCursor: s.hintCursor,
	}
}

func (s *Session) transitionErr(action string) error {
	return fmt.Errorf("cannot %s in phase %s: %w", action, s.phase, domain.ErrInvalidTransition)
}
