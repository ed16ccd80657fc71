package catalog

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// ValidateSchema checks a CatalogSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *CatalogSchema) []error {
	var errs []error

	if len(schema.Topics) == 0 {
		errs = append(errs, fmt.Errorf("at least one topic is required"))
	}

	names := map[string]bool{}
	slugs := map[string]bool{}
	for i, t := range schema.Topics {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("topic[%d]: name is required", i))
		}
		if names[t.Name] {
			errs = append(errs, fmt.Errorf("topic[%d]: duplicate name %q", i, t.Name))
		}
		names[t.Name] = true

		s := topicSlug(t)
		if s != "" && slugs[s] {
			errs = append(errs, fmt.Errorf("topic[%d]: duplicate slug %q", i, s))
		}
		slugs[s] = true

		if len(t.Challenges) == 0 {
			errs = append(errs, fmt.Errorf("topic[%d] %q: at least one challenge is required", i, t.Name))
		}
		for j, c := range t.Challenges {
			if c.Title == "" {
				errs = append(errs, fmt.Errorf("topic[%d].challenge[%d]: title is required", i, j))
			}
			if c.CorrectAnswer == "" {
				errs = append(errs, fmt.Errorf("topic[%d].challenge[%d]: correct_answer is required", i, j))
			} else if strings.TrimSpace(c.CorrectAnswer) != c.CorrectAnswer {
				errs = append(errs, fmt.Errorf("topic[%d].challenge[%d]: correct_answer %q has surrounding whitespace", i, j, c.CorrectAnswer))
			}
		}
	}

	return errs
}

func topicSlug(t TopicConfig) string {
	if t.Slug != "" {
		return t.Slug
	}
	return slug.Make(t.Name)
}
