package domain

// Phase is the state of a challenge session.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseInChallenge   Phase = "in_challenge"
	PhaseCorrect       Phase = "correct"
	PhaseTopicComplete Phase = "topic_complete"
)

// ValidPhases is the canonical set of accepted phase strings.
var ValidPhases = map[string]bool{
	"idle": true, "in_challenge": true, "correct": true, "topic_complete": true,
}

// Label returns a short human readable label for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseInChallenge:
		return "In challenge"
	case PhaseCorrect:
		return "Correct"
	case PhaseTopicComplete:
		return "Topic complete"
	default:
		return string(p)
	}
}
