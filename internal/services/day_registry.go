package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/selene-app/selene/internal/models"
)

var ErrReminderTitleRequired = errors.New("reminder title required")

// ReminderInput is the payload for creating a reminder on a day.
type ReminderInput struct {
	Title       string
	Description string
	Time        string
}

// DayRegistryService maintains the date-keyed day records inside the
// snapshot. Reads never persist anything; the first mutation on a date
// materializes its record from the calculator and stores it. A stored
// record is from then on returned as-is, even if the cycle baseline changes
// later.
type DayRegistryService struct {
	store *UserDataService
}

func NewDayRegistryService(store *UserDataService) *DayRegistryService {
	return &DayRegistryService{store: store}
}

// DayInfo returns the record for a day, computing it on the fly when the
// registry has none. Read-only: the computed record is not stored.
func (service *DayRegistryService) DayInfo(day time.Time) (models.CycleDay, error) {
	data, err := service.store.Load()
	if err != nil {
		return models.CycleDay{}, err
	}
	return DayInfoForDay(data.CycleData, day), nil
}

// Phase is a convenience for callers that only need the phase label.
func (service *DayRegistryService) Phase(day time.Time) (string, error) {
	data, err := service.store.Load()
	if err != nil {
		return "", err
	}
	return CyclePhaseForDay(data.CycleData, day), nil
}

func (service *DayRegistryService) SymptomsForDay(day time.Time) ([]string, error) {
	record, err := service.DayInfo(day)
	if err != nil {
		return nil, err
	}
	return record.Symptoms, nil
}

// AddSymptom records a symptom on a day, materializing the day record
// first if needed. Adding a symptom the day already has is a no-op.
func (service *DayRegistryService) AddSymptom(day time.Time, symptom string) (models.CycleDay, error) {
	data, err := service.store.Load()
	if err != nil {
		return models.CycleDay{}, err
	}

	record := DayInfoForDay(data.CycleData, day)
	if record.HasSymptom(symptom) {
		return record, nil
	}
	record.Symptoms = append(record.Symptoms, symptom)
	data.CycleData.Entries[record.Date] = record

	if err := service.store.Save(data); err != nil {
		return models.CycleDay{}, err
	}
	return record, nil
}

// RemoveSymptom drops a symptom from a day. Removing a symptom that was
// never recorded is a no-op and persists nothing.
func (service *DayRegistryService) RemoveSymptom(day time.Time, symptom string) (models.CycleDay, error) {
	data, err := service.store.Load()
	if err != nil {
		return models.CycleDay{}, err
	}

	dateKey := dateOnly(day).Format(models.DateLayout)
	record, ok := data.CycleData.Entries[dateKey]
	if !ok || !record.HasSymptom(symptom) {
		return DayInfoForDay(data.CycleData, day), nil
	}

	record.Symptoms = removeString(record.Symptoms, symptom)
	data.CycleData.Entries[dateKey] = record

	if err := service.store.Save(data); err != nil {
		return models.CycleDay{}, err
	}
	return record, nil
}

func (service *DayRegistryService) RemindersForDay(day time.Time) ([]models.Reminder, error) {
	record, err := service.DayInfo(day)
	if err != nil {
		return nil, err
	}
	return record.Reminders, nil
}

func (service *DayRegistryService) AddReminder(day time.Time, input ReminderInput) (models.Reminder, error) {
	if input.Title == "" {
		return models.Reminder{}, ErrReminderTitleRequired
	}

	data, err := service.store.Load()
	if err != nil {
		return models.Reminder{}, err
	}

	reminder := models.Reminder{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Time:        input.Time,
	}

	record := DayInfoForDay(data.CycleData, day)
	record.Reminders = append(record.Reminders, reminder)
	data.CycleData.Entries[record.Date] = record

	if err := service.store.Save(data); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

// UpdateReminder applies a partial edit to one reminder. It reports false
// when the date has no stored record or the id is unknown; the caller
// decides how to surface that.
func (service *DayRegistryService) UpdateReminder(day time.Time, reminderID string, update models.ReminderUpdate) (bool, error) {
	data, err := service.store.Load()
	if err != nil {
		return false, err
	}

	dateKey := dateOnly(day).Format(models.DateLayout)
	record, ok := data.CycleData.Entries[dateKey]
	if !ok {
		return false, nil
	}

	updated := false
	for i := range record.Reminders {
		if record.Reminders[i].ID != reminderID {
			continue
		}
		if update.Title != nil {
			record.Reminders[i].Title = *update.Title
		}
		if update.Description != nil {
			record.Reminders[i].Description = *update.Description
		}
		if update.Time != nil {
			record.Reminders[i].Time = *update.Time
		}
		if update.IsCompleted != nil {
			record.Reminders[i].IsCompleted = *update.IsCompleted
		}
		updated = true
		break
	}
	if !updated {
		return false, nil
	}

	data.CycleData.Entries[dateKey] = record
	if err := service.store.Save(data); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveReminder deletes a reminder by id, reporting false when the date or
// id is not found.
func (service *DayRegistryService) RemoveReminder(day time.Time, reminderID string) (bool, error) {
	data, err := service.store.Load()
	if err != nil {
		return false, err
	}

	dateKey := dateOnly(day).Format(models.DateLayout)
	record, ok := data.CycleData.Entries[dateKey]
	if !ok {
		return false, nil
	}

	remaining := make([]models.Reminder, 0, len(record.Reminders))
	removed := false
	for _, reminder := range record.Reminders {
		if reminder.ID == reminderID {
			removed = true
			continue
		}
		remaining = append(remaining, reminder)
	}
	if !removed {
		return false, nil
	}

	record.Reminders = remaining
	data.CycleData.Entries[dateKey] = record
	if err := service.store.Save(data); err != nil {
		return false, err
	}
	return true, nil
}
