package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/selene-app/selene/internal/db"
	"github.com/selene-app/selene/internal/services"
	"gorm.io/gorm"
)

// Handler is the localhost JSON boundary in front of the core services.
// It validates inputs and translates outcomes to HTTP; domain behavior
// lives entirely in internal/services.
type Handler struct {
	store    *services.UserDataService
	days     *services.DayRegistryService
	moods    *services.MoodLedgerService
	validate *validator.Validate
	location *time.Location
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}

	store := services.NewUserDataService(db.NewSnapshotRepository(database))
	return &Handler{
		store:    store,
		days:     services.NewDayRegistryService(store),
		moods:    services.NewMoodLedgerService(store),
		validate: validator.New(),
		location: location,
	}
}
