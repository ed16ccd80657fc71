package domain

import "errors"

var (
	// ErrInvalidTopic indicates a topic name that is not part of the catalog.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrInvalidTransition indicates an action that is not allowed in the
	// session's current phase.
	ErrInvalidTransition = errors.New("invalid session transition")
)

// PointsPerCorrect is the score awarded for each correct answer.
const PointsPerCorrect = 10
