package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/selene-app/selene/internal/models"
)

func TestBuildMoodHistoryCSV(t *testing.T) {
	entries := []models.MoodEntry{
		{
			ID:         "a",
			Timestamp:  "2024-01-05T08:00:00Z",
			Mood:       4,
			Notes:      "slept well",
			Symptoms:   []string{"cramps", "fatigue"},
			MoodLabels: []string{"Good", "Tired"},
		},
		{ID: "b", Timestamp: "2024-01-06T09:00:00Z", Mood: 9},
	}

	output, err := BuildMoodHistoryCSV(entries)
	if err != nil {
		t.Fatalf("build csv failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(ExportMoodCSVHeaders, ",") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "cramps; fatigue") || !strings.Contains(lines[1], "Good; Tired") {
		t.Fatalf("first row missing joined lists: %q", lines[1])
	}
	// Out-of-range ratings render clamped, same as the ledger stores them.
	if !strings.Contains(lines[2], ",5,") {
		t.Fatalf("expected clamped rating in row: %q", lines[2])
	}
}

func TestBuildSnapshotExport(t *testing.T) {
	data := models.DefaultUserData(mustDay(t, "2024-03-15"))
	data.SavedSymptoms = []string{"cramps"}

	payload, err := BuildSnapshotExport(data)
	if err != nil {
		t.Fatalf("build export failed: %v", err)
	}

	decoded := models.UserData{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.CycleData.LastPeriodStart != "2024-03-01" {
		t.Fatalf("cycle data lost in export: %+v", decoded.CycleData)
	}
	if len(decoded.SavedSymptoms) != 1 {
		t.Fatalf("saved symptoms lost in export: %+v", decoded.SavedSymptoms)
	}
}
