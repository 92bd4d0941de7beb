package models

// CycleDay is one entry of the day registry, keyed by its Date string.
// The enrichment fields (DetailedPhase through Avoid) are only present for
// days 1-28 of a cycle; Symptoms and Reminders only once a user annotated
// the day.
type CycleDay struct {
	Date           string     `json:"date"`
	Phase          string     `json:"phase"`
	DetailedPhase  string     `json:"detailedPhase,omitempty"`
	DayOfCycle     int        `json:"dayOfCycle"`
	IsMenstruation bool       `json:"isMenstruation"`
	HormoneState   string     `json:"hormoneState,omitempty"`
	Cognition      string     `json:"cognition,omitempty"`
	Optimal        string     `json:"optimal,omitempty"`
	Avoid          string     `json:"avoid,omitempty"`
	Symptoms       []string   `json:"symptoms,omitempty"`
	Reminders      []Reminder `json:"reminders,omitempty"`
}

// HasSymptom reports whether the symptom is already recorded for the day.
func (day CycleDay) HasSymptom(symptom string) bool {
	for _, existing := range day.Symptoms {
		if existing == symptom {
			return true
		}
	}
	return false
}

type Reminder struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// ReminderUpdate carries a partial reminder edit; nil fields stay untouched.
type ReminderUpdate struct {
	Title       *string
	Description *string
	Time        *string
	IsCompleted *bool
}
