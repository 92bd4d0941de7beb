package models

import (
	"errors"
	"time"
)

// ErrSnapshotCorrupt marks a stored snapshot payload that exists but cannot
// be decoded; loaders fall back to defaults instead of failing on it.
var ErrSnapshotCorrupt = errors.New("snapshot payload corrupt")

// UserData is the whole persisted state of the app: cycle baseline and day
// registry, the mood ledger, and the pinned symptom / chronic-condition
// lists. It is always loaded and saved as one blob; older snapshots may
// omit any optional field.
type UserData struct {
	Name              string      `json:"name,omitempty"`
	CycleData         CycleData   `json:"cycleData"`
	MoodEntries       []MoodEntry `json:"moodEntries"`
	SavedSymptoms     []string    `json:"savedSymptoms,omitempty"`
	ChronicConditions []string    `json:"chronicConditions,omitempty"`
}

func DefaultUserData(now time.Time) UserData {
	return UserData{
		CycleData:   DefaultCycleData(now),
		MoodEntries: []MoodEntry{},
	}
}

// Normalize fills in the containers an older or hand-edited snapshot may
// have stored as null, so callers never see nil maps or slices.
func (data *UserData) Normalize() {
	if data.CycleData.Entries == nil {
		data.CycleData.Entries = map[string]CycleDay{}
	}
	if data.MoodEntries == nil {
		data.MoodEntries = []MoodEntry{}
	}
}

// SnapshotKey is the storage key of the single persisted snapshot row.
const SnapshotKey = "primary"

// UserSnapshot is the sqlite row holding the JSON-serialized UserData.
type UserSnapshot struct {
	StorageKey string `gorm:"primaryKey"`
	Payload    string `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
