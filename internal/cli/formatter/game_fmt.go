package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tailquest/internal/domain"
)

// FormatTopics renders the topic table with per-topic progress.
func FormatTopics(topics []domain.Topic, records map[string]domain.ProgressRecord) string {
	if len(topics) == 0 {
		return Dim("No topics.") + "\n"
	}
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rec := records[t.Name]
		rows = append(rows, []string{
			Bold(t.Name),
			StyleGreen.Render(t.Slug),
			fmt.Sprintf("%d", t.Len()),
			RenderProgress(rec.Percent(), 10),
		})
	}
	return RenderTable([]string{"TOPIC", "SLUG", "CHALLENGES", "PROGRESS"}, rows)
}

// FormatProgress renders every record and the overall percentage.
func FormatProgress(records []domain.ProgressRecord, overall int) string {
	var b strings.Builder
	b.WriteString(Header("Progress"))
	b.WriteString("\n\n")
	for _, rec := range records {
		mark := "  "
		if rec.Done() {
			mark = StyleGreen.Render("✓ ")
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n",
			mark,
			PadRight(rec.Topic, 22),
			RenderProgress(rec.Percent(), 16),
			Dim(fmt.Sprintf("%d/%d", rec.Completed, rec.Total)),
		)
	}
	fmt.Fprintf(&b, "\n  %s %s\n", Bold("Overall"), RenderProgress(overall, 24))
	return b.String()
}

// FormatTopicProgress renders a single topic's record.
func FormatTopicProgress(rec domain.ProgressRecord) string {
	return fmt.Sprintf("%s  %s  %s\n",
		Bold(rec.Topic),
		RenderProgress(rec.Percent(), 20),
		Dim(fmt.Sprintf("%d/%d challenges", rec.Completed, rec.Total)),
	)
}

// FormatChallenge renders the challenge header and prompt.
func FormatChallenge(ch domain.Challenge, index, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StylePurple.Render(fmt.Sprintf("Challenge %d/%d", index+1, total)), Bold(ch.Title))
	if ch.Description != "" {
		b.WriteString(StyleFg.Render(ch.Description))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatWrong renders the feedback for a wrong answer.
func FormatWrong(hint string) string {
	out := StyleRed.Render("✗ Not quite.")
	if hint != "" {
		out += " " + StyleYellow.Render("Hint: ") + hint
	}
	return out
}

// FormatCorrect renders the feedback for a correct answer.
func FormatCorrect(explanation string, score int) string {
	out := StyleGreen.Render("✓ Correct!") + " " + Dim(fmt.Sprintf("score %d", score))
	if explanation != "" {
		out += "\n" + explanation
	}
	return out
}

// FormatCompletion renders the topic-complete summary.
func FormatCompletion(topic string, score, completed, accuracy int) string {
	body := fmt.Sprintf("%s\n\n%s %d\n%s %d\n%s %d%%",
		StyleGreen.Render("You finished "+topic+"!"),
		Dim("Score:     "), score,
		Dim("Challenges:"), completed,
		Dim("Accuracy:  "), accuracy,
	)
	return RenderBox("Topic complete", body)
}
