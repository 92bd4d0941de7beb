package services

import (
	"time"

	"github.com/selene-app/selene/internal/models"
)

// moodLabelValues maps descriptive mood tags onto the numeric scale used
// for trend charts. Unknown labels count as neutral.
var moodLabelValues = map[string]int{
	"Very Sad":     1,
	"Sad":          2,
	"Neutral":      3,
	"Good":         4,
	"Happy":        5,
	"Very Happy":   6,
	"Loved":        6,
	"Crying":       1,
	"Angry":        2,
	"Tired":        3,
	"Anxious":      2,
	"Overthinking": 3,
	"Exhausted":    2,
	"Annoyed":      2,
	"Excited":      5,
	"Nervous":      3,
	"Overwhelmed":  2,
	"Vulnerable":   2,
	"Peaceful":     5,
	"Nauseous":     2,
}

func MoodLabelValue(label string) int {
	if value, ok := moodLabelValues[label]; ok {
		return value
	}
	return 3
}

// MoodTrendPoint is one day of the trend window. Average is meaningless
// when HasData is false.
type MoodTrendPoint struct {
	Date    string   `json:"date"`
	Average float64  `json:"average"`
	HasData bool     `json:"hasData"`
	Moods   []string `json:"moods,omitempty"`
}

// entryMoodValue scores one entry: the mean of its label values when labels
// are present, the stored numeric rating otherwise.
func entryMoodValue(entry models.MoodEntry) float64 {
	if len(entry.MoodLabels) == 0 {
		return float64(entry.Mood)
	}
	total := 0
	for _, label := range entry.MoodLabels {
		total += MoodLabelValue(label)
	}
	return float64(total) / float64(len(entry.MoodLabels))
}

// MoodTrend aggregates entries into per-day points for the trailing window
// ending at `until`. Multiple entries on one day are folded with a running
// pairwise average, matching how the original graph accumulated them.
func MoodTrend(entries []models.MoodEntry, until time.Time, days int) []MoodTrendPoint {
	if days <= 0 {
		return []MoodTrendPoint{}
	}

	points := make([]MoodTrendPoint, 0, days)
	indexByDate := make(map[string]int, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := dateOnly(until).AddDate(0, 0, -offset).Format(models.DateLayout)
		indexByDate[date] = len(points)
		points = append(points, MoodTrendPoint{Date: date})
	}

	for _, entry := range entries {
		index, ok := indexByDate[entry.EntryDate()]
		if !ok {
			continue
		}
		value := entryMoodValue(entry)
		point := &points[index]
		if point.HasData {
			point.Average = (point.Average + value) / 2
		} else {
			point.Average = value
			point.HasData = true
		}
		if len(entry.MoodLabels) > 0 {
			point.Moods = entry.MoodLabels
		}
	}

	return points
}
