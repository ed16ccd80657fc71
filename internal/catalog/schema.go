package catalog

// CatalogSchema is the top-level YAML catalog structure.
type CatalogSchema struct {
	Version string        `yaml:"version"`
	Topics  []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string            `yaml:"name"`
	Slug       string            `yaml:"slug,omitempty"` // derived from Name when empty
	Summary    string            `yaml:"summary,omitempty"`
	Challenges []ChallengeConfig `yaml:"challenges"`
}

type ChallengeConfig struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	CorrectAnswer  string   `yaml:"correct_answer"`
	Hint           string   `yaml:"hint,omitempty"` // single-hint shorthand, prepended to Hints
	Hints          []string `yaml:"hints,omitempty"`
	Explanation    string   `yaml:"explanation"`
	PreviewContent string   `yaml:"preview_content"`
	PreviewClasses string   `yaml:"preview_classes,omitempty"`
}

// AllHints returns the ordered hint list including the single-hint shorthand.
func (c ChallengeConfig) AllHints() []string {
	var hints []string
	if c.Hint != "" {
		hints = append(hints, c.Hint)
	}
	for _, h := range c.Hints {
		if h != "" {
			hints = append(hints, h)
		}
	}
	return hints
}
