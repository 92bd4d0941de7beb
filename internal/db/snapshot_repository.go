package db

import (
	"encoding/json"
	"fmt"

	"github.com/selene-app/selene/internal/models"
	"gorm.io/gorm"
)

// SnapshotRepository stores the whole UserData blob as one keyed row.
// Save is an atomic whole-object overwrite; there is no partial write path.
type SnapshotRepository struct {
	database *gorm.DB
}

func NewSnapshotRepository(database *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{database: database}
}

func (repo *SnapshotRepository) Load() (models.UserData, bool, error) {
	row := models.UserSnapshot{}
	result := repo.database.
		Where("storage_key = ?", models.SnapshotKey).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return models.UserData{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserData{}, false, nil
	}

	data := models.UserData{}
	if err := json.Unmarshal([]byte(row.Payload), &data); err != nil {
		return models.UserData{}, false, fmt.Errorf("%w: %v", models.ErrSnapshotCorrupt, err)
	}
	return data, true, nil
}

func (repo *SnapshotRepository) Save(data models.UserData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	row := models.UserSnapshot{}
	result := repo.database.
		Where("storage_key = ?", models.SnapshotKey).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		row = models.UserSnapshot{StorageKey: models.SnapshotKey, Payload: string(payload)}
		return repo.database.Create(&row).Error
	}

	row.Payload = string(payload)
	return repo.database.Save(&row).Error
}

func (repo *SnapshotRepository) Delete() error {
	return repo.database.
		Where("storage_key = ?", models.SnapshotKey).
		Delete(&models.UserSnapshot{}).Error
}
