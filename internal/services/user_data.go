package services

import (
	"errors"
	"log"
	"time"

	"github.com/selene-app/selene/internal/models"
)

var (
	ErrSnapshotLoadFailed = errors.New("load snapshot failed")
	ErrSnapshotSaveFailed = errors.New("save snapshot failed")
)

// SnapshotRepository is the durable home of the single UserData blob.
// Load reports found=false for a first-time user and wraps
// models.ErrSnapshotCorrupt when a stored payload cannot be decoded.
type SnapshotRepository interface {
	Load() (models.UserData, bool, error)
	Save(data models.UserData) error
	Delete() error
}

// UserDataService owns the snapshot lifecycle. Every mutation follows the
// same load, mutate in memory, save-whole-snapshot pattern; the last writer
// wins. There is exactly one writer at a time by construction, so no
// locking happens here.
type UserDataService struct {
	snapshots SnapshotRepository
	now       func() time.Time
}

func NewUserDataService(snapshots SnapshotRepository) *UserDataService {
	return &UserDataService{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Load returns the stored snapshot, or a fresh default one when nothing was
// stored yet. A corrupt payload also falls back to defaults but is logged,
// so it stays distinguishable from the legitimate first-run case.
func (service *UserDataService) Load() (models.UserData, error) {
	data, found, err := service.snapshots.Load()
	if err != nil {
		if errors.Is(err, models.ErrSnapshotCorrupt) {
			log.Printf("stored snapshot unreadable, starting from defaults: %v", err)
			return models.DefaultUserData(service.now()), nil
		}
		return models.UserData{}, ErrSnapshotLoadFailed
	}
	if !found {
		return models.DefaultUserData(service.now()), nil
	}
	data.Normalize()
	return data, nil
}

func (service *UserDataService) Save(data models.UserData) error {
	if err := service.snapshots.Save(data); err != nil {
		return ErrSnapshotSaveFailed
	}
	return nil
}

// Reset wipes the stored snapshot and returns the defaults a subsequent
// Load would produce.
func (service *UserDataService) Reset() (models.UserData, error) {
	if err := service.snapshots.Delete(); err != nil {
		return models.UserData{}, ErrSnapshotSaveFailed
	}
	return models.DefaultUserData(service.now()), nil
}

// UpdateCycleData replaces the user-set baseline. The luteal phase length
// and previously materialized registry entries are left untouched; the
// caller is responsible for having validated the ranges at the boundary.
func (service *UserDataService) UpdateCycleData(lastPeriodStart string, cycleLength int, periodLength int) (models.UserData, error) {
	data, err := service.Load()
	if err != nil {
		return models.UserData{}, err
	}

	data.CycleData.LastPeriodStart = lastPeriodStart
	data.CycleData.AverageCycleLength = cycleLength
	data.CycleData.PeriodLength = periodLength

	if err := service.Save(data); err != nil {
		return models.UserData{}, err
	}
	return data, nil
}

func (service *UserDataService) SavedSymptoms() ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	return data.SavedSymptoms, nil
}

func (service *UserDataService) AddSavedSymptom(name string) ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	data.SavedSymptoms = appendUnique(data.SavedSymptoms, name)
	if err := service.Save(data); err != nil {
		return nil, err
	}
	return data.SavedSymptoms, nil
}

func (service *UserDataService) RemoveSavedSymptom(name string) ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	data.SavedSymptoms = removeString(data.SavedSymptoms, name)
	if err := service.Save(data); err != nil {
		return nil, err
	}
	return data.SavedSymptoms, nil
}

func (service *UserDataService) ChronicConditions() ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	return data.ChronicConditions, nil
}

func (service *UserDataService) AddChronicCondition(name string) ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	data.ChronicConditions = appendUnique(data.ChronicConditions, name)
	if err := service.Save(data); err != nil {
		return nil, err
	}
	return data.ChronicConditions, nil
}

func (service *UserDataService) RemoveChronicCondition(name string) ([]string, error) {
	data, err := service.Load()
	if err != nil {
		return nil, err
	}
	data.ChronicConditions = removeString(data.ChronicConditions, name)
	if err := service.Save(data); err != nil {
		return nil, err
	}
	return data.ChronicConditions, nil
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

func removeString(values []string, value string) []string {
	filtered := values[:0]
	for _, existing := range values {
		if existing != value {
			filtered = append(filtered, existing)
		}
	}
	return filtered
}
