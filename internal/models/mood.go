package models

const (
	MinMoodRating = 1
	MaxMoodRating = 5
)

// MoodEntry is one append-only ledger record. Timestamp is a full ISO 8601
// date-time; entries may be backdated but are never edited after creation.
// When MoodLabels is non-empty it takes display precedence over the numeric
// rating.
type MoodEntry struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	Mood       int      `json:"mood"`
	Notes      string   `json:"notes,omitempty"`
	Symptoms   []string `json:"symptoms,omitempty"`
	MoodLabels []string `json:"moodLabels,omitempty"`
}

// EntryDate returns the calendar-date portion of the entry timestamp.
func (entry MoodEntry) EntryDate() string {
	if len(entry.Timestamp) < len(DateLayout) {
		return entry.Timestamp
	}
	return entry.Timestamp[:len(DateLayout)]
}

// ClampMoodRating normalizes a rating into the 1-5 scale the ledger stores.
func ClampMoodRating(mood int) int {
	if mood < MinMoodRating {
		return MinMoodRating
	}
	if mood > MaxMoodRating {
		return MaxMoodRating
	}
	return mood
}
