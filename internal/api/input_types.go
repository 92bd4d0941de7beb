package api

type cycleSetupInput struct {
	LastPeriodStart    string `json:"lastPeriodStart" validate:"required,datetime=2006-01-02"`
	AverageCycleLength int    `json:"averageCycleLength" validate:"min=21,max=40"`
	PeriodLength       int    `json:"periodLength" validate:"min=2,max=10"`
}

type symptomInput struct {
	Name string `json:"name" validate:"required"`
}

type reminderInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04"`
}

type reminderUpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Time        *string `json:"time" validate:"omitempty,datetime=15:04"`
	IsCompleted *bool   `json:"isCompleted"`
}

// moodInput deliberately skips range validation on Mood: the ledger clamps
// any rating into 1-5 on append.
type moodInput struct {
	Mood       int      `json:"mood"`
	Notes      string   `json:"notes"`
	Symptoms   []string `json:"symptoms"`
	MoodLabels []string `json:"moodLabels"`
	Timestamp  string   `json:"timestamp"`
}
