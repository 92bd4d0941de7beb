package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/selene-app/selene/internal/models"
)

var ExportMoodCSVHeaders = []string{
	"Timestamp",
	"Mood",
	"Mood labels",
	"Symptoms",
	"Notes",
}

// BuildSnapshotExport renders the whole snapshot as indented JSON, suitable
// for a user-facing backup download.
func BuildSnapshotExport(data models.UserData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// BuildMoodHistoryCSV renders the mood ledger as CSV, one row per entry in
// ledger order.
func BuildMoodHistoryCSV(entries []models.MoodEntry) (string, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)

	if err := writer.Write(ExportMoodCSVHeaders); err != nil {
		return "", err
	}
	for _, entry := range entries {
		if err := writer.Write([]string{
			entry.Timestamp,
			csvMoodRating(entry.Mood),
			strings.Join(entry.MoodLabels, "; "),
			strings.Join(entry.Symptoms, "; "),
			entry.Notes,
		}); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return output.String(), nil
}

func csvMoodRating(mood int) string {
	return []string{"1", "2", "3", "4", "5"}[models.ClampMoodRating(mood)-1]
}
