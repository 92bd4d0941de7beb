package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/selene-app/selene/internal/models"
)

// memorySnapshotRepository mimics the sqlite repository with a JSON payload
// in memory, so load/save copy semantics match production.
type memorySnapshotRepository struct {
	payload string
	found   bool
	corrupt bool
	saves   int
}

func (repo *memorySnapshotRepository) Load() (models.UserData, bool, error) {
	if repo.corrupt {
		return models.UserData{}, false, fmt.Errorf("%w: invalid character", models.ErrSnapshotCorrupt)
	}
	if !repo.found {
		return models.UserData{}, false, nil
	}
	data := models.UserData{}
	if err := json.Unmarshal([]byte(repo.payload), &data); err != nil {
		return models.UserData{}, false, fmt.Errorf("%w: %v", models.ErrSnapshotCorrupt, err)
	}
	return data, true, nil
}

func (repo *memorySnapshotRepository) Save(data models.UserData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	repo.payload = string(payload)
	repo.found = true
	repo.saves++
	return nil
}

func (repo *memorySnapshotRepository) Delete() error {
	repo.payload = ""
	repo.found = false
	return nil
}

func newTestStore(t *testing.T) (*UserDataService, *memorySnapshotRepository) {
	t.Helper()
	repo := &memorySnapshotRepository{}
	return NewUserDataService(repo), repo
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func testCycleData() models.CycleData {
	return models.CycleData{
		AverageCycleLength: 28,
		LastPeriodStart:    "2024-01-01",
		PeriodLength:       5,
		LutealPhaseLength:  14,
		Entries:            map[string]models.CycleDay{},
	}
}
