package services

import (
	"errors"
	"testing"

	"github.com/selene-app/selene/internal/models"
)

func newTestRegistry(t *testing.T) (*DayRegistryService, *UserDataService, *memorySnapshotRepository) {
	t.Helper()
	store, repo := newTestStore(t)
	return NewDayRegistryService(store), store, repo
}

func TestDayInfoDoesNotPersist(t *testing.T) {
	registry, _, repo := newTestRegistry(t)

	if _, err := registry.DayInfo(mustDay(t, "2024-02-10")); err != nil {
		t.Fatalf("day info failed: %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("read-only query persisted %d times", repo.saves)
	}
}

func TestAddSymptomMaterializesDay(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	record, err := registry.AddSymptom(mustDay(t, "2024-02-10"), "headache")
	if err != nil {
		t.Fatalf("add symptom failed: %v", err)
	}
	if record.Date != "2024-02-10" || record.Phase == "" || record.DayOfCycle == 0 {
		t.Fatalf("expected a fully materialized record, got %+v", record)
	}

	data, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	stored, ok := data.CycleData.Entries["2024-02-10"]
	if !ok {
		t.Fatalf("mutation must store the materialized record")
	}
	if len(stored.Symptoms) != 1 || stored.Symptoms[0] != "headache" {
		t.Fatalf("unexpected stored symptoms: %v", stored.Symptoms)
	}
}

func TestAddSymptomIsIdempotent(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	day := mustDay(t, "2024-02-10")

	if _, err := registry.AddSymptom(day, "cramps"); err != nil {
		t.Fatalf("add symptom failed: %v", err)
	}
	record, err := registry.AddSymptom(day, "cramps")
	if err != nil {
		t.Fatalf("add symptom failed: %v", err)
	}
	if len(record.Symptoms) != 1 {
		t.Fatalf("expected single occurrence, got %v", record.Symptoms)
	}
}

func TestRemoveSymptomIsNoOpWhenAbsent(t *testing.T) {
	registry, _, repo := newTestRegistry(t)

	if _, err := registry.RemoveSymptom(mustDay(t, "2024-02-10"), "cramps"); err != nil {
		t.Fatalf("remove symptom failed: %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("no-op removal persisted %d times", repo.saves)
	}

	if _, err := registry.AddSymptom(mustDay(t, "2024-02-10"), "cramps"); err != nil {
		t.Fatalf("add symptom failed: %v", err)
	}
	record, err := registry.RemoveSymptom(mustDay(t, "2024-02-10"), "cramps")
	if err != nil {
		t.Fatalf("remove symptom failed: %v", err)
	}
	if len(record.Symptoms) != 0 {
		t.Fatalf("expected symptom gone, got %v", record.Symptoms)
	}
}

func TestStoredRecordSurvivesCycleChange(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	day := mustDay(t, "2024-02-10")

	before, err := registry.AddSymptom(day, "headache")
	if err != nil {
		t.Fatalf("add symptom failed: %v", err)
	}

	// Changing the baseline later must not recompute already materialized
	// records.
	if _, err := store.UpdateCycleData("2024-02-09", 21, 3); err != nil {
		t.Fatalf("update cycle failed: %v", err)
	}

	after, err := registry.DayInfo(day)
	if err != nil {
		t.Fatalf("day info failed: %v", err)
	}
	if after.Phase != before.Phase || after.DayOfCycle != before.DayOfCycle {
		t.Fatalf("stored record was recomputed: before %+v, after %+v", before, after)
	}
	if len(after.Symptoms) != 1 || after.Symptoms[0] != "headache" {
		t.Fatalf("stored annotations lost: %+v", after.Symptoms)
	}
}

func TestAddReminderMaterializesDay(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	day := mustDay(t, "2024-02-10")

	reminder, err := registry.AddReminder(day, ReminderInput{Title: "Take vitamin", Time: "08:00"})
	if err != nil {
		t.Fatalf("add reminder failed: %v", err)
	}
	if reminder.ID == "" {
		t.Fatalf("expected generated reminder id")
	}
	if reminder.IsCompleted {
		t.Fatalf("new reminders start incomplete")
	}

	reminders, err := registry.RemindersForDay(day)
	if err != nil {
		t.Fatalf("list reminders failed: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Title != "Take vitamin" || reminders[0].Time != "08:00" {
		t.Fatalf("unexpected reminders: %+v", reminders)
	}

	unrelated, err := registry.RemindersForDay(mustDay(t, "2024-02-11"))
	if err != nil {
		t.Fatalf("list reminders failed: %v", err)
	}
	if len(unrelated) != 0 {
		t.Fatalf("unrelated date must stay empty, got %+v", unrelated)
	}
}

func TestAddReminderRequiresTitle(t *testing.T) {
	registry, _, repo := newTestRegistry(t)

	_, err := registry.AddReminder(mustDay(t, "2024-02-10"), ReminderInput{Time: "08:00"})
	if !errors.Is(err, ErrReminderTitleRequired) {
		t.Fatalf("expected ErrReminderTitleRequired, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("failed add persisted %d times", repo.saves)
	}
}

func TestUpdateReminder(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	day := mustDay(t, "2024-02-10")

	reminder, err := registry.AddReminder(day, ReminderInput{Title: "Take vitamin"})
	if err != nil {
		t.Fatalf("add reminder failed: %v", err)
	}

	completed := true
	newTitle := "Take iron"
	updated, err := registry.UpdateReminder(day, reminder.ID, models.ReminderUpdate{
		Title:       &newTitle,
		IsCompleted: &completed,
	})
	if err != nil {
		t.Fatalf("update reminder failed: %v", err)
	}
	if !updated {
		t.Fatalf("expected update to report success")
	}

	reminders, err := registry.RemindersForDay(day)
	if err != nil {
		t.Fatalf("list reminders failed: %v", err)
	}
	if reminders[0].Title != "Take iron" || !reminders[0].IsCompleted {
		t.Fatalf("partial update not applied: %+v", reminders[0])
	}

	if ok, err := registry.UpdateReminder(day, "missing-id", models.ReminderUpdate{IsCompleted: &completed}); err != nil || ok {
		t.Fatalf("unknown id must report failure without error, got ok=%v err=%v", ok, err)
	}
	if ok, err := registry.UpdateReminder(mustDay(t, "2024-02-11"), reminder.ID, models.ReminderUpdate{IsCompleted: &completed}); err != nil || ok {
		t.Fatalf("unknown date must report failure without error, got ok=%v err=%v", ok, err)
	}
}

func TestRemoveReminder(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	day := mustDay(t, "2024-02-10")

	reminder, err := registry.AddReminder(day, ReminderInput{Title: "Take vitamin"})
	if err != nil {
		t.Fatalf("add reminder failed: %v", err)
	}

	removed, err := registry.RemoveReminder(day, reminder.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal to succeed, got ok=%v err=%v", removed, err)
	}

	reminders, err := registry.RemindersForDay(day)
	if err != nil {
		t.Fatalf("list reminders failed: %v", err)
	}
	if len(reminders) != 0 {
		t.Fatalf("expected no reminders left, got %+v", reminders)
	}

	removed, err = registry.RemoveReminder(day, reminder.ID)
	if err != nil || removed {
		t.Fatalf("second removal must report failure without error, got ok=%v err=%v", removed, err)
	}
}
