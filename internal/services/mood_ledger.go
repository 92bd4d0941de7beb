package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/selene-app/selene/internal/models"
)

var ErrMoodTimestampInvalid = errors.New("mood timestamp invalid")

// MoodEntryInput is the payload for appending a ledger entry. Timestamp is
// optional; when set it must be a full RFC 3339 date-time and backdates the
// entry, otherwise the current moment is used.
type MoodEntryInput struct {
	Mood       int
	Notes      string
	Symptoms   []string
	MoodLabels []string
	Timestamp  string
}

// MoodLedgerService is the append-only mood/symptom log. Entries are never
// updated or deleted; queries filter on the calendar-date portion of the
// timestamp and preserve insertion order.
type MoodLedgerService struct {
	store *UserDataService
	now   func() time.Time
}

func NewMoodLedgerService(store *UserDataService) *MoodLedgerService {
	return &MoodLedgerService{
		store: store,
		now:   time.Now,
	}
}

func (service *MoodLedgerService) Append(input MoodEntryInput) (models.MoodEntry, error) {
	timestamp := service.now().Format(time.RFC3339)
	if input.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, input.Timestamp)
		if err != nil {
			return models.MoodEntry{}, ErrMoodTimestampInvalid
		}
		timestamp = parsed.Format(time.RFC3339)
	}

	entry := models.MoodEntry{
		ID:         uuid.NewString(),
		Timestamp:  timestamp,
		Mood:       models.ClampMoodRating(input.Mood),
		Notes:      input.Notes,
		Symptoms:   input.Symptoms,
		MoodLabels: input.MoodLabels,
	}

	data, err := service.store.Load()
	if err != nil {
		return models.MoodEntry{}, err
	}
	data.MoodEntries = append(data.MoodEntries, entry)
	if err := service.store.Save(data); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (service *MoodLedgerService) AllEntries() ([]models.MoodEntry, error) {
	data, err := service.store.Load()
	if err != nil {
		return nil, err
	}
	return data.MoodEntries, nil
}

// EntriesForDate returns the entries whose timestamp falls on the given
// calendar day, in insertion order.
func (service *MoodLedgerService) EntriesForDate(day time.Time) ([]models.MoodEntry, error) {
	data, err := service.store.Load()
	if err != nil {
		return nil, err
	}

	dateKey := dateOnly(day).Format(models.DateLayout)
	matches := make([]models.MoodEntry, 0)
	for _, entry := range data.MoodEntries {
		if entry.EntryDate() == dateKey {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}
