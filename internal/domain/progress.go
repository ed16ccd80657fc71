package domain

import "math"

// ProgressRecord tracks completed challenges for one topic.
// Completed never exceeds Total.
type ProgressRecord struct {
	Topic     string
	Completed int
	Total     int
}

// Clamp returns a copy with Completed bounded to [0, Total].
func (r ProgressRecord) Clamp() ProgressRecord {
	if r.Completed < 0 {
		r.Completed = 0
	}
	if r.Completed > r.Total {
		r.Completed = r.Total
	}
	return r
}

// Done reports whether every challenge in the topic has been completed.
func (r ProgressRecord) Done() bool {
	return r.Total > 0 && r.Completed >= r.Total
}

// Percent returns the completion percentage rounded to the nearest integer.
func (r ProgressRecord) Percent() int {
	return Percent(r.Completed, r.Total)
}

// Percent returns part/whole as a rounded percentage, 0 when whole is 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
